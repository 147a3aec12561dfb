package postgres

import "time"

type memberTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	LeagueID    string     `db:"league_public_id"`
	DisplayName string     `db:"display_name"`
	AvatarURL   string     `db:"avatar_url"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type memberInsertModel struct {
	PublicID    string `db:"public_id"`
	LeagueID    string `db:"league_public_id"`
	DisplayName string `db:"display_name"`
	AvatarURL   string `db:"avatar_url"`
}
