package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/schedule"
)

type WeekRepository struct {
	db *sqlx.DB
}

func NewWeekRepository(db *sqlx.DB) *WeekRepository {
	return &WeekRepository{db: db}
}

const weekSelectColumns = `id, week_index, open_at, deadline_at, created_at, updated_at`

func (r *WeekRepository) GetByIndex(ctx context.Context, index int) (schedule.Week, bool, error) {
	query := `SELECT ` + weekSelectColumns + ` FROM weeks WHERE week_index = $1`

	var row weekTableModel
	if err := r.db.GetContext(ctx, &row, query, index); err != nil {
		if isNotFound(err) {
			return schedule.Week{}, false, nil
		}
		return schedule.Week{}, false, fmt.Errorf("get week: %w", err)
	}

	return weekFromRow(row), true, nil
}

func (r *WeekRepository) List(ctx context.Context) ([]schedule.Week, error) {
	query := `SELECT ` + weekSelectColumns + ` FROM weeks ORDER BY week_index`

	var rows []weekTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list weeks: %w", err)
	}

	out := make([]schedule.Week, 0, len(rows))
	for _, row := range rows {
		out = append(out, weekFromRow(row))
	}
	return out, nil
}

func (r *WeekRepository) Upsert(ctx context.Context, item schedule.Week) error {
	insertModel := weekInsertModel{
		WeekIndex:  item.Index,
		OpenAt:     item.OpenAt,
		DeadlineAt: item.DeadlineAt,
	}

	query := `INSERT INTO weeks (week_index, open_at, deadline_at)
VALUES (:week_index, :open_at, :deadline_at)
ON CONFLICT (week_index)
DO UPDATE SET
    open_at = EXCLUDED.open_at,
    deadline_at = EXCLUDED.deadline_at`

	if _, err := r.db.NamedExecContext(ctx, query, insertModel); err != nil {
		return fmt.Errorf("upsert week: %w", err)
	}
	return nil
}

func weekFromRow(row weekTableModel) schedule.Week {
	return schedule.Week{
		Index:      row.WeekIndex,
		OpenAt:     row.OpenAt,
		DeadlineAt: row.DeadlineAt,
	}
}
