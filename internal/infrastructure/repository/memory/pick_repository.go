package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/pick"
)

type PickRepository struct {
	mu       sync.RWMutex
	byMember map[string][]pick.Pick
	byLeague map[string][]pick.Pick
}

func NewPickRepository() *PickRepository {
	return &PickRepository{
		byMember: make(map[string][]pick.Pick),
		byLeague: make(map[string][]pick.Pick),
	}
}

// SubmitWeek mirrors the postgres unique constraints on
// (league, member, week, slot) and (league, member, player) so concurrent
// submitters cannot bypass the already-submitted and use-once rules. The
// whole batch is checked under the write lock before any row is stored.
func (r *PickRepository) SubmitWeek(_ context.Context, picks []pick.Pick) error {
	if len(picks) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range picks {
		for _, existing := range r.byMember[memberKey(p.LeagueID, p.MemberID)] {
			if existing.Week == p.Week && existing.Slot == p.Slot {
				return fmt.Errorf("%w: week %d", pick.ErrAlreadySubmitted, p.Week)
			}
			if existing.PlayerID == p.PlayerID {
				return fmt.Errorf("%w: %s", pick.ErrPlayerAlreadyUsed, p.PlayerID)
			}
		}
		for _, prior := range picks[:i] {
			if prior.LeagueID != p.LeagueID || prior.MemberID != p.MemberID {
				continue
			}
			if prior.Week == p.Week && prior.Slot == p.Slot {
				return fmt.Errorf("%w: week %d", pick.ErrAlreadySubmitted, p.Week)
			}
			if prior.PlayerID == p.PlayerID {
				return fmt.Errorf("%w: %s", pick.ErrPlayerAlreadyUsed, p.PlayerID)
			}
		}
	}

	for _, p := range picks {
		key := memberKey(p.LeagueID, p.MemberID)
		r.byMember[key] = append(r.byMember[key], p)
		r.byLeague[p.LeagueID] = append(r.byLeague[p.LeagueID], p)
	}

	return nil
}

func (r *PickRepository) ListByMember(_ context.Context, leagueID, memberID string) ([]pick.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return clonePicks(r.byMember[memberKey(leagueID, memberID)]), nil
}

func (r *PickRepository) ListByMemberWeek(_ context.Context, leagueID, memberID string, week int) ([]pick.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pick.Pick, 0, 3)
	for _, p := range r.byMember[memberKey(leagueID, memberID)] {
		if p.Week == week {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PickRepository) ListByLeague(_ context.Context, leagueID string) ([]pick.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return clonePicks(r.byLeague[leagueID]), nil
}

func memberKey(leagueID, memberID string) string {
	return leagueID + "::" + memberID
}

func clonePicks(picks []pick.Pick) []pick.Pick {
	out := make([]pick.Pick, 0, len(picks))
	out = append(out, picks...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Week != out[j].Week {
			return out[i].Week < out[j].Week
		}
		return out[i].Slot < out[j].Slot
	})

	return out
}
