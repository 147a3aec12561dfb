package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/member"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/pick"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/player"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/projection"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/schedule"
	"github.com/sirbenjaminG88/playoff-picks/internal/platform/id"
)

type SubmitPicksInput struct {
	LeagueID      string
	MemberID      string
	Week          int
	QuarterbackID string
	RunningBackID string
	FlexID        string
}

type oddsCacheBuster interface {
	InvalidateLeague(ctx context.Context, leagueID string)
}

type PickService struct {
	memberRepo     member.Repository
	weekRepo       schedule.Repository
	pickRepo       pick.Repository
	projectionRepo projection.Repository
	idGen          id.Generator
	oddsCache      oddsCacheBuster
	now            func() time.Time
}

func NewPickService(
	memberRepo member.Repository,
	weekRepo schedule.Repository,
	pickRepo pick.Repository,
	projectionRepo projection.Repository,
	idGen id.Generator,
) *PickService {
	return &PickService{
		memberRepo:     memberRepo,
		weekRepo:       weekRepo,
		pickRepo:       pickRepo,
		projectionRepo: projectionRepo,
		idGen:          idGen,
		now:            time.Now,
	}
}

// SetOddsCacheBuster registers the odds cache for invalidation after a
// successful submission. Optional; nil means no cache layer is wired.
func (s *PickService) SetOddsCacheBuster(buster oddsCacheBuster) {
	s.oddsCache = buster
}

func (s *PickService) Submit(ctx context.Context, input SubmitPicksInput) ([]pick.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.Submit")
	defer span.End()

	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.MemberID = strings.TrimSpace(input.MemberID)
	input.QuarterbackID = strings.TrimSpace(input.QuarterbackID)
	input.RunningBackID = strings.TrimSpace(input.RunningBackID)
	input.FlexID = strings.TrimSpace(input.FlexID)

	if input.LeagueID == "" {
		return nil, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}
	if input.MemberID == "" {
		return nil, fmt.Errorf("%w: member_id is required", ErrInvalidInput)
	}
	if input.Week <= 0 {
		return nil, fmt.Errorf("%w: week must be greater than zero", ErrInvalidInput)
	}
	if input.QuarterbackID == "" || input.RunningBackID == "" || input.FlexID == "" {
		return nil, fmt.Errorf("%w: qb, rb and flex player ids are required", ErrInvalidInput)
	}

	m, exists, err := s.memberRepo.GetByID(ctx, input.MemberID)
	if err != nil {
		return nil, fmt.Errorf("get member by id: %w", err)
	}
	if !exists || m.LeagueID != input.LeagueID {
		return nil, fmt.Errorf("%w: member=%s league=%s", ErrNotFound, input.MemberID, input.LeagueID)
	}

	week, exists, err := s.weekRepo.GetByIndex(ctx, input.Week)
	if err != nil {
		return nil, fmt.Errorf("get week by index: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: week=%d", ErrNotFound, input.Week)
	}

	existing, err := s.pickRepo.ListByMemberWeek(ctx, input.LeagueID, input.MemberID, input.Week)
	if err != nil {
		return nil, fmt.Errorf("list picks for week: %w", err)
	}
	allPicks, err := s.pickRepo.ListByMember(ctx, input.LeagueID, input.MemberID)
	if err != nil {
		return nil, fmt.Errorf("list picks for member: %w", err)
	}

	snapshot, err := s.projectionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projection snapshot: %w", err)
	}

	// Eliminated players leave the eligible pool entirely; a pick naming
	// one fails the same way an unknown player does.
	eligible := make(map[string]player.Position, len(snapshot.Players))
	for _, p := range snapshot.Players {
		if p.IsEliminated {
			continue
		}
		eligible[p.PlayerID] = p.Position
	}

	submission := pick.Submission{
		QuarterbackID: input.QuarterbackID,
		RunningBackID: input.RunningBackID,
		FlexID:        input.FlexID,
	}
	if err := pick.ValidateSubmission(week, existing, submission, pick.UsedPlayers(allPicks), eligible, s.now().UTC()); err != nil {
		return nil, err
	}

	submittedAt := s.now().UTC()
	slotOrder := []struct {
		slot     pick.Slot
		playerID string
	}{
		{slot: pick.SlotQuarterback, playerID: input.QuarterbackID},
		{slot: pick.SlotRunningBack, playerID: input.RunningBackID},
		{slot: pick.SlotFlex, playerID: input.FlexID},
	}

	picks := make([]pick.Pick, 0, len(slotOrder))
	for _, item := range slotOrder {
		pickID, err := s.idGen.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate pick id: %w", err)
		}
		p := pick.Pick{
			ID:          pickID,
			LeagueID:    input.LeagueID,
			MemberID:    input.MemberID,
			Week:        input.Week,
			Slot:        item.slot,
			PlayerID:    item.playerID,
			SubmittedAt: submittedAt,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		picks = append(picks, p)
	}

	if err := s.pickRepo.SubmitWeek(ctx, picks); err != nil {
		return nil, fmt.Errorf("submit week picks: %w", err)
	}

	if s.oddsCache != nil {
		s.oddsCache.InvalidateLeague(ctx, input.LeagueID)
	}

	return picks, nil
}

func (s *PickService) ListByMember(ctx context.Context, leagueID, memberID string) ([]pick.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.ListByMember")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	memberID = strings.TrimSpace(memberID)
	if leagueID == "" || memberID == "" {
		return nil, fmt.Errorf("%w: league_id and member_id are required", ErrInvalidInput)
	}

	m, exists, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("get member by id: %w", err)
	}
	if !exists || m.LeagueID != leagueID {
		return nil, fmt.Errorf("%w: member=%s league=%s", ErrNotFound, memberID, leagueID)
	}

	picks, err := s.pickRepo.ListByMember(ctx, leagueID, memberID)
	if err != nil {
		return nil, fmt.Errorf("list picks by member: %w", err)
	}

	return picks, nil
}
