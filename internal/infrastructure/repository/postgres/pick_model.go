package postgres

import "time"

type pickTableModel struct {
	ID          int64     `db:"id"`
	PublicID    string    `db:"public_id"`
	LeagueID    string    `db:"league_public_id"`
	MemberID    string    `db:"member_public_id"`
	WeekIndex   int       `db:"week_index"`
	Slot        string    `db:"slot"`
	PlayerID    string    `db:"player_public_id"`
	SubmittedAt time.Time `db:"submitted_at"`
	CreatedAt   time.Time `db:"created_at"`
}

type pickInsertModel struct {
	PublicID    string    `db:"public_id"`
	LeagueID    string    `db:"league_public_id"`
	MemberID    string    `db:"member_public_id"`
	WeekIndex   int       `db:"week_index"`
	Slot        string    `db:"slot"`
	PlayerID    string    `db:"player_public_id"`
	SubmittedAt time.Time `db:"submitted_at"`
}
