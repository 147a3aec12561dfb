package memory

import (
	"context"
	"sync"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/member"
)

type MemberRepository struct {
	mu       sync.RWMutex
	byID     map[string]member.Member
	byLeague map[string][]member.Member
}

func NewMemberRepository(members []member.Member) *MemberRepository {
	byID := make(map[string]member.Member, len(members))
	byLeague := make(map[string][]member.Member)

	for _, m := range members {
		byID[m.ID] = m
		byLeague[m.LeagueID] = append(byLeague[m.LeagueID], m)
	}

	return &MemberRepository{byID: byID, byLeague: byLeague}
}

func (r *MemberRepository) GetByID(_ context.Context, memberID string) (member.Member, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[memberID]
	if !ok {
		return member.Member{}, false, nil
	}

	return m, true, nil
}

func (r *MemberRepository) ListByLeague(_ context.Context, leagueID string) ([]member.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.byLeague[leagueID]
	out := make([]member.Member, 0, len(members))
	out = append(out, members...)

	return out, nil
}
