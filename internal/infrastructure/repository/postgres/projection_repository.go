package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/player"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/projection"
)

type ProjectionRepository struct {
	db *sqlx.DB
}

func NewProjectionRepository(db *sqlx.DB) *ProjectionRepository {
	return &ProjectionRepository{db: db}
}

func (r *ProjectionRepository) Snapshot(ctx context.Context) (projection.Snapshot, error) {
	query := `SELECT id, player_public_id, player_name, team_public_id, position, projected_points, is_eliminated, taken_at
FROM projections
ORDER BY id`

	var rows []projectionTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return projection.Snapshot{}, fmt.Errorf("load projection snapshot: %w", err)
	}

	out := projection.Snapshot{Players: make([]projection.Projection, 0, len(rows))}
	for _, row := range rows {
		if row.TakenAt.After(out.TakenAt) {
			out.TakenAt = row.TakenAt
		}
		out.Players = append(out.Players, projection.Projection{
			PlayerID:        row.PlayerID,
			Name:            row.Name,
			TeamID:          row.TeamID,
			Position:        player.Position(row.Position),
			ProjectedPoints: row.ProjectedPoints,
			IsEliminated:    row.IsEliminated,
		})
	}
	return out, nil
}

// Replace swaps the whole pool in one transaction so readers never see a
// half-refreshed snapshot.
func (r *ProjectionRepository) Replace(ctx context.Context, snapshot projection.Snapshot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin projection replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM projections`); err != nil {
		return fmt.Errorf("clear projections: %w", err)
	}

	query := `INSERT INTO projections (player_public_id, player_name, team_public_id, position, projected_points, is_eliminated, taken_at)
VALUES (:player_public_id, :player_name, :team_public_id, :position, :projected_points, :is_eliminated, :taken_at)`

	for _, p := range snapshot.Players {
		insertModel := projectionInsertModel{
			PlayerID:        p.PlayerID,
			Name:            p.Name,
			TeamID:          p.TeamID,
			Position:        string(p.Position),
			ProjectedPoints: p.ProjectedPoints,
			IsEliminated:    p.IsEliminated,
			TakenAt:         snapshot.TakenAt,
		}
		if _, err := tx.NamedExecContext(ctx, query, insertModel); err != nil {
			return fmt.Errorf("insert projection %s: %w", p.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit projection replace: %w", err)
	}
	return nil
}
