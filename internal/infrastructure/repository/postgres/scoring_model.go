package postgres

import "time"

type scoringTableModel struct {
	ID                 int64     `db:"id"`
	PublicID           string    `db:"public_id"`
	PassYardsPerPoint  float64   `db:"pass_yards_per_point"`
	PassTDPoints       float64   `db:"pass_td_points"`
	RushYardsPerPoint  float64   `db:"rush_yards_per_point"`
	RushTDPoints       float64   `db:"rush_td_points"`
	RecYardsPerPoint   float64   `db:"rec_yards_per_point"`
	RecTDPoints        float64   `db:"rec_td_points"`
	InterceptionPoints float64   `db:"interception_points"`
	FumbleLostPoints   float64   `db:"fumble_lost_points"`
	TwoPointConvPoints float64   `db:"two_point_conv_points"`
	IsActive           bool      `db:"is_active"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}
