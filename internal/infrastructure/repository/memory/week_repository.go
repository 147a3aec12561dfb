package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/schedule"
)

type WeekRepository struct {
	mu    sync.RWMutex
	weeks []schedule.Week
	index map[int]schedule.Week
}

func NewWeekRepository(weeks []schedule.Week) *WeekRepository {
	sorted := make([]schedule.Week, 0, len(weeks))
	sorted = append(sorted, weeks...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	index := make(map[int]schedule.Week, len(sorted))
	for _, w := range sorted {
		index[w.Index] = w
	}

	return &WeekRepository{weeks: sorted, index: index}
}

func (r *WeekRepository) GetByIndex(_ context.Context, index int) (schedule.Week, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.index[index]
	if !ok {
		return schedule.Week{}, false, nil
	}

	return w, true, nil
}

func (r *WeekRepository) List(_ context.Context) ([]schedule.Week, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedule.Week, 0, len(r.weeks))
	out = append(out, r.weeks...)

	return out, nil
}
