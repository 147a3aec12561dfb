package projection

import "context"

// Repository stores the projection snapshot. Replace swaps the whole pool
// atomically so concurrent simulation runs never see a partial refresh.
type Repository interface {
	Snapshot(ctx context.Context) (Snapshot, error)
	Replace(ctx context.Context, snapshot Snapshot) error
}
