package scoring

import "context"

// Repository exposes the active scoring table. A league without a table is
// a fatal configuration error for scoring and simulation requests.
type Repository interface {
	ActiveTable(ctx context.Context) (Table, bool, error)
}
