package postgres

import "time"

type projectionTableModel struct {
	ID              int64     `db:"id"`
	PlayerID        string    `db:"player_public_id"`
	Name            string    `db:"player_name"`
	TeamID          string    `db:"team_public_id"`
	Position        string    `db:"position"`
	ProjectedPoints float64   `db:"projected_points"`
	IsEliminated    bool      `db:"is_eliminated"`
	TakenAt         time.Time `db:"taken_at"`
}

type projectionInsertModel struct {
	PlayerID        string    `db:"player_public_id"`
	Name            string    `db:"player_name"`
	TeamID          string    `db:"team_public_id"`
	Position        string    `db:"position"`
	ProjectedPoints float64   `db:"projected_points"`
	IsEliminated    bool      `db:"is_eliminated"`
	TakenAt         time.Time `db:"taken_at"`
}
