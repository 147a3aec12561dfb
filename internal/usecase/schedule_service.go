package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/member"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/pick"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/schedule"
)

type WeekStatus struct {
	Index      int
	OpenAt     time.Time
	DeadlineAt time.Time
	State      schedule.WindowState
	Picks      []pick.Pick
}

type ScheduleView struct {
	CurrentWeekIndex int
	WeeksRemaining   int
	Weeks            []WeekStatus
}

type ScheduleService struct {
	memberRepo member.Repository
	weekRepo   schedule.Repository
	pickRepo   pick.Repository
	now        func() time.Time
}

func NewScheduleService(
	memberRepo member.Repository,
	weekRepo schedule.Repository,
	pickRepo pick.Repository,
) *ScheduleService {
	return &ScheduleService{
		memberRepo: memberRepo,
		weekRepo:   weekRepo,
		pickRepo:   pickRepo,
		now:        time.Now,
	}
}

// MemberView resolves every week's window state for one member, plus the
// current week index and the count of weeks still ahead of their deadline.
func (s *ScheduleService) MemberView(ctx context.Context, leagueID, memberID string) (ScheduleView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.MemberView")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	memberID = strings.TrimSpace(memberID)
	if leagueID == "" || memberID == "" {
		return ScheduleView{}, fmt.Errorf("%w: league_id and member_id are required", ErrInvalidInput)
	}

	m, exists, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return ScheduleView{}, fmt.Errorf("get member by id: %w", err)
	}
	if !exists || m.LeagueID != leagueID {
		return ScheduleView{}, fmt.Errorf("%w: member=%s league=%s", ErrNotFound, memberID, leagueID)
	}

	weeks, err := s.weekRepo.List(ctx)
	if err != nil {
		return ScheduleView{}, fmt.Errorf("list weeks: %w", err)
	}

	picks, err := s.pickRepo.ListByMember(ctx, leagueID, memberID)
	if err != nil {
		return ScheduleView{}, fmt.Errorf("list picks by member: %w", err)
	}

	picksByWeek := make(map[int][]pick.Pick)
	for _, p := range picks {
		picksByWeek[p.Week] = append(picksByWeek[p.Week], p)
	}

	now := s.now().UTC()
	view := ScheduleView{
		CurrentWeekIndex: schedule.CurrentWeekIndex(weeks, now),
		WeeksRemaining:   schedule.WeeksRemaining(weeks, now),
		Weeks:            make([]WeekStatus, 0, len(weeks)),
	}
	for _, week := range weeks {
		weekPicks := picksByWeek[week.Index]
		view.Weeks = append(view.Weeks, WeekStatus{
			Index:      week.Index,
			OpenAt:     week.OpenAt,
			DeadlineAt: week.DeadlineAt,
			State:      schedule.Status(week, len(weekPicks) > 0, now),
			Picks:      weekPicks,
		})
	}

	return view, nil
}
