package memory

import (
	"context"
	"sync"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/projection"
)

type ProjectionRepository struct {
	mu       sync.RWMutex
	snapshot projection.Snapshot
}

func NewProjectionRepository(snapshot projection.Snapshot) *ProjectionRepository {
	return &ProjectionRepository{snapshot: cloneSnapshot(snapshot)}
}

func (r *ProjectionRepository) Snapshot(_ context.Context) (projection.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneSnapshot(r.snapshot), nil
}

func (r *ProjectionRepository) Replace(_ context.Context, snapshot projection.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshot = cloneSnapshot(snapshot)
	return nil
}

func cloneSnapshot(s projection.Snapshot) projection.Snapshot {
	copied := s
	copied.Players = append([]projection.Projection(nil), s.Players...)
	return copied
}
