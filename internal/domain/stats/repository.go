package stats

import "context"

// Repository stores realized stat lines keyed by (player, week).
type Repository interface {
	GetByPlayerWeek(ctx context.Context, playerID string, week int) (Line, bool, error)
	List(ctx context.Context) ([]Line, error)
	UpsertLines(ctx context.Context, lines []Line) error
}
