package memory

import (
	"context"
	"sync"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/scoring"
)

type ScoringRepository struct {
	mu    sync.RWMutex
	table scoring.Table
	set   bool
}

func NewScoringRepository(table scoring.Table) *ScoringRepository {
	return &ScoringRepository{table: table, set: true}
}

// NewEmptyScoringRepository builds a repository with no active table, for
// exercising the missing-table failure path.
func NewEmptyScoringRepository() *ScoringRepository {
	return &ScoringRepository{}
}

func (r *ScoringRepository) ActiveTable(_ context.Context) (scoring.Table, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.set {
		return scoring.Table{}, false, nil
	}

	return r.table, true, nil
}
