package postgres

import "time"

type statLineTableModel struct {
	ID                  int64     `db:"id"`
	PlayerID            string    `db:"player_public_id"`
	WeekIndex           int       `db:"week_index"`
	PassYards           int       `db:"pass_yards"`
	PassTDs             int       `db:"pass_tds"`
	RushYards           int       `db:"rush_yards"`
	RushTDs             int       `db:"rush_tds"`
	RecYards            int       `db:"rec_yards"`
	RecTDs              int       `db:"rec_tds"`
	Interceptions       int       `db:"interceptions"`
	FumblesLost         int       `db:"fumbles_lost"`
	TwoPointConversions int       `db:"two_point_conversions"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

type statLineInsertModel struct {
	PlayerID            string `db:"player_public_id"`
	WeekIndex           int    `db:"week_index"`
	PassYards           int    `db:"pass_yards"`
	PassTDs             int    `db:"pass_tds"`
	RushYards           int    `db:"rush_yards"`
	RushTDs             int    `db:"rush_tds"`
	RecYards            int    `db:"rec_yards"`
	RecTDs              int    `db:"rec_tds"`
	Interceptions       int    `db:"interceptions"`
	FumblesLost         int    `db:"fumbles_lost"`
	TwoPointConversions int    `db:"two_point_conversions"`
}
