package postgres

import "time"

type weekTableModel struct {
	ID         int64     `db:"id"`
	WeekIndex  int       `db:"week_index"`
	OpenAt     time.Time `db:"open_at"`
	DeadlineAt time.Time `db:"deadline_at"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type weekInsertModel struct {
	WeekIndex  int       `db:"week_index"`
	OpenAt     time.Time `db:"open_at"`
	DeadlineAt time.Time `db:"deadline_at"`
}
