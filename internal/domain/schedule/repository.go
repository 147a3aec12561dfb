package schedule

import "context"

// Repository exposes the season week schedule.
type Repository interface {
	GetByIndex(ctx context.Context, index int) (Week, bool, error)
	List(ctx context.Context) ([]Week, error)
}
