package cache

import (
	"context"
	"strconv"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/member"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/pick"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/projection"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/schedule"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/scoring"
	basecache "github.com/sirbenjaminG88/playoff-picks/internal/platform/cache"
)

type MemberRepository struct {
	next  member.Repository
	cache *basecache.Store
}

func NewMemberRepository(next member.Repository, cache *basecache.Store) *MemberRepository {
	return &MemberRepository{next: next, cache: cache}
}

func (r *MemberRepository) GetByID(ctx context.Context, memberID string) (member.Member, bool, error) {
	key := "member:id:" + memberID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, memberID)
		if err != nil {
			return nil, err
		}
		return cachedMemberByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return member.Member{}, false, err
	}

	cached, _ := v.(cachedMemberByID)
	return cached.value, cached.exists, nil
}

func (r *MemberRepository) ListByLeague(ctx context.Context, leagueID string) ([]member.Member, error) {
	key := "member:list:league:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]member.Member(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]member.Member)
	return append([]member.Member(nil), items...), nil
}

type cachedMemberByID struct {
	value  member.Member
	exists bool
}

type WeekRepository struct {
	next  schedule.Repository
	cache *basecache.Store
}

func NewWeekRepository(next schedule.Repository, cache *basecache.Store) *WeekRepository {
	return &WeekRepository{next: next, cache: cache}
}

func (r *WeekRepository) GetByIndex(ctx context.Context, index int) (schedule.Week, bool, error) {
	key := "week:index:" + strconv.Itoa(index)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByIndex(ctx, index)
		if err != nil {
			return nil, err
		}
		return cachedWeekByIndex{value: item, exists: exists}, nil
	})
	if err != nil {
		return schedule.Week{}, false, err
	}

	cached, _ := v.(cachedWeekByIndex)
	return cached.value, cached.exists, nil
}

func (r *WeekRepository) List(ctx context.Context) ([]schedule.Week, error) {
	v, err := r.cache.GetOrLoad(ctx, "week:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]schedule.Week(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]schedule.Week)
	return append([]schedule.Week(nil), items...), nil
}

type cachedWeekByIndex struct {
	value  schedule.Week
	exists bool
}

type ProjectionRepository struct {
	next  projection.Repository
	cache *basecache.Store
}

func NewProjectionRepository(next projection.Repository, cache *basecache.Store) *ProjectionRepository {
	return &ProjectionRepository{next: next, cache: cache}
}

func (r *ProjectionRepository) Snapshot(ctx context.Context) (projection.Snapshot, error) {
	v, err := r.cache.GetOrLoad(ctx, "projection:snapshot", func(ctx context.Context) (any, error) {
		snapshot, err := r.next.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		return cloneSnapshot(snapshot), nil
	})
	if err != nil {
		return projection.Snapshot{}, err
	}

	snapshot, _ := v.(projection.Snapshot)
	return cloneSnapshot(snapshot), nil
}

func (r *ProjectionRepository) Replace(ctx context.Context, snapshot projection.Snapshot) error {
	if err := r.next.Replace(ctx, snapshot); err != nil {
		return err
	}
	r.cache.Delete(ctx, "projection:snapshot")
	return nil
}

func cloneSnapshot(snapshot projection.Snapshot) projection.Snapshot {
	out := snapshot
	out.Players = append([]projection.Projection(nil), snapshot.Players...)
	return out
}

type ScoringRepository struct {
	next  scoring.Repository
	cache *basecache.Store
}

func NewScoringRepository(next scoring.Repository, cache *basecache.Store) *ScoringRepository {
	return &ScoringRepository{next: next, cache: cache}
}

func (r *ScoringRepository) ActiveTable(ctx context.Context) (scoring.Table, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "scoring:active", func(ctx context.Context) (any, error) {
		table, exists, err := r.next.ActiveTable(ctx)
		if err != nil {
			return nil, err
		}
		return cachedScoringTable{value: table, exists: exists}, nil
	})
	if err != nil {
		return scoring.Table{}, false, err
	}

	cached, _ := v.(cachedScoringTable)
	return cached.value, cached.exists, nil
}

type cachedScoringTable struct {
	value  scoring.Table
	exists bool
}

type PickRepository struct {
	next  pick.Repository
	cache *basecache.Store
}

func NewPickRepository(next pick.Repository, cache *basecache.Store) *PickRepository {
	return &PickRepository{next: next, cache: cache}
}

func (r *PickRepository) SubmitWeek(ctx context.Context, picks []pick.Pick) error {
	if err := r.next.SubmitWeek(ctx, picks); err != nil {
		return err
	}
	for _, p := range picks {
		r.cache.Delete(ctx, pickMemberKey(p.LeagueID, p.MemberID))
		r.cache.DeletePrefix(ctx, pickMemberWeekPrefix(p.LeagueID, p.MemberID))
		r.cache.Delete(ctx, "pick:list:league:"+p.LeagueID)
	}
	return nil
}

func (r *PickRepository) ListByMember(ctx context.Context, leagueID, memberID string) ([]pick.Pick, error) {
	key := pickMemberKey(leagueID, memberID)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByMember(ctx, leagueID, memberID)
		if err != nil {
			return nil, err
		}
		return append([]pick.Pick(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]pick.Pick)
	return append([]pick.Pick(nil), items...), nil
}

func (r *PickRepository) ListByMemberWeek(ctx context.Context, leagueID, memberID string, week int) ([]pick.Pick, error) {
	key := pickMemberWeekPrefix(leagueID, memberID) + strconv.Itoa(week)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByMemberWeek(ctx, leagueID, memberID, week)
		if err != nil {
			return nil, err
		}
		return append([]pick.Pick(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]pick.Pick)
	return append([]pick.Pick(nil), items...), nil
}

func (r *PickRepository) ListByLeague(ctx context.Context, leagueID string) ([]pick.Pick, error) {
	key := "pick:list:league:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]pick.Pick(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]pick.Pick)
	return append([]pick.Pick(nil), items...), nil
}

func pickMemberKey(leagueID, memberID string) string {
	return "pick:list:league:" + leagueID + ":member:" + memberID
}

func pickMemberWeekPrefix(leagueID, memberID string) string {
	return pickMemberKey(leagueID, memberID) + ":week:"
}
