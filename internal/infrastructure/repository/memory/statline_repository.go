package memory

import (
	"context"
	"sync"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/stats"
)

type StatLineRepository struct {
	mu    sync.RWMutex
	items map[string]stats.Line
}

func NewStatLineRepository(lines []stats.Line) *StatLineRepository {
	items := make(map[string]stats.Line, len(lines))
	for _, l := range lines {
		items[l.Key()] = l
	}

	return &StatLineRepository{items: items}
}

func (r *StatLineRepository) GetByPlayerWeek(_ context.Context, playerID string, week int) (stats.Line, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[stats.Line{PlayerID: playerID, Week: week}.Key()]
	if !ok {
		return stats.Line{}, false, nil
	}

	return l, true, nil
}

func (r *StatLineRepository) List(_ context.Context) ([]stats.Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stats.Line, 0, len(r.items))
	for _, l := range r.items {
		out = append(out, l)
	}

	return out, nil
}

func (r *StatLineRepository) UpsertLines(_ context.Context, lines []stats.Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range lines {
		r.items[l.Key()] = l
	}

	return nil
}
