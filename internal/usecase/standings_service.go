package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/member"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/pick"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/scoring"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/stats"
)

type StandingRow struct {
	MemberID    string
	DisplayName string
	TotalPoints float64
	Rank        int
}

type StandingsService struct {
	memberRepo  member.Repository
	pickRepo    pick.Repository
	statRepo    stats.Repository
	scoringRepo scoring.Repository
}

func NewStandingsService(
	memberRepo member.Repository,
	pickRepo pick.Repository,
	statRepo stats.Repository,
	scoringRepo scoring.Repository,
) *StandingsService {
	return &StandingsService{
		memberRepo:  memberRepo,
		pickRepo:    pickRepo,
		statRepo:    statRepo,
		scoringRepo: scoringRepo,
	}
}

// LeagueStandings totals every member's realized points. Picks without a
// realized stat line contribute zero; they belong to weeks not yet played.
func (s *StandingsService) LeagueStandings(ctx context.Context, leagueID string) ([]StandingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.LeagueStandings")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	members, err := s.memberRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list members by league: %w", err)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: league=%s has no members", ErrNotFound, leagueID)
	}

	table, exists, err := s.scoringRepo.ActiveTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active scoring table: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: no active scoring table", ErrDependencyUnavailable)
	}

	totals, err := s.MemberTotals(ctx, leagueID, table)
	if err != nil {
		return nil, err
	}

	rows := make([]StandingRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, StandingRow{
			MemberID:    m.ID,
			DisplayName: m.DisplayName,
			TotalPoints: totals[m.ID],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalPoints != rows[j].TotalPoints {
			return rows[i].TotalPoints > rows[j].TotalPoints
		}
		return rows[i].DisplayName < rows[j].DisplayName
	})
	for i := range rows {
		rows[i].Rank = i + 1
		if i > 0 && rows[i].TotalPoints == rows[i-1].TotalPoints {
			rows[i].Rank = rows[i-1].Rank
		}
	}

	return rows, nil
}

// MemberTotals computes realized point totals keyed by member id.
func (s *StandingsService) MemberTotals(ctx context.Context, leagueID string, table scoring.Table) (map[string]float64, error) {
	picks, err := s.pickRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list picks by league: %w", err)
	}

	totals := make(map[string]float64)
	for _, p := range picks {
		line, exists, err := s.statRepo.GetByPlayerWeek(ctx, p.PlayerID, p.Week)
		if err != nil {
			return nil, fmt.Errorf("get stat line player=%s week=%d: %w", p.PlayerID, p.Week, err)
		}
		if !exists {
			continue
		}
		totals[p.MemberID] += scoring.Points(line.Line, table)
	}

	return totals, nil
}
