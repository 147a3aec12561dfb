package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/member"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/pick"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/projection"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/schedule"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/scoring"
	"github.com/sirbenjaminG88/playoff-picks/internal/platform/cache"
)

const oddsCachePrefix = "odds::"

type OddsRow struct {
	MemberID           string
	DisplayName        string
	AvatarURL          string
	CurrentPoints      float64
	WinProbability     float64
	DisplayProbability string
}

type LeagueOdds struct {
	LeagueID         string
	CurrentWeekIndex int
	WeeksRemaining   int
	Trials           int
	EliminatedTeams  []string
	PlayerPoolSize   int
	ComputedAt       time.Time
	Rows             []OddsRow
}

type SimulationService struct {
	memberRepo     member.Repository
	weekRepo       schedule.Repository
	pickRepo       pick.Repository
	projectionRepo projection.Repository
	scoringRepo    scoring.Repository
	standings      *StandingsService
	engine         *SimulationEngine
	store          *cache.Store
	now            func() time.Time
}

func NewSimulationService(
	memberRepo member.Repository,
	weekRepo schedule.Repository,
	pickRepo pick.Repository,
	projectionRepo projection.Repository,
	scoringRepo scoring.Repository,
	standings *StandingsService,
	engine *SimulationEngine,
	store *cache.Store,
) *SimulationService {
	return &SimulationService{
		memberRepo:     memberRepo,
		weekRepo:       weekRepo,
		pickRepo:       pickRepo,
		projectionRepo: projectionRepo,
		scoringRepo:    scoringRepo,
		standings:      standings,
		engine:         engine,
		store:          store,
		now:            time.Now,
	}
}

// InvalidateLeague drops cached odds for one league. Called after any pick
// submission or projection refresh.
func (s *SimulationService) InvalidateLeague(ctx context.Context, leagueID string) {
	if s.store == nil {
		return
	}
	s.store.DeletePrefix(ctx, oddsCachePrefix+leagueID)
}

// LeagueOdds returns win probabilities for every member, served from cache
// when a recent run is still valid.
func (s *SimulationService) LeagueOdds(ctx context.Context, leagueID string) (LeagueOdds, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SimulationService.LeagueOdds")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return LeagueOdds{}, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	if s.store == nil {
		return s.computeLeagueOdds(ctx, leagueID)
	}

	value, err := s.store.GetOrLoad(ctx, oddsCachePrefix+leagueID, func(ctx context.Context) (any, error) {
		return s.computeLeagueOdds(ctx, leagueID)
	})
	if err != nil {
		return LeagueOdds{}, err
	}

	odds, ok := value.(LeagueOdds)
	if !ok {
		return LeagueOdds{}, fmt.Errorf("unexpected cached odds type %T", value)
	}
	return odds, nil
}

func (s *SimulationService) computeLeagueOdds(ctx context.Context, leagueID string) (LeagueOdds, error) {
	members, err := s.memberRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return LeagueOdds{}, fmt.Errorf("list members by league: %w", err)
	}
	if len(members) == 0 {
		return LeagueOdds{}, fmt.Errorf("%w: league=%s has no members", ErrNotFound, leagueID)
	}

	table, exists, err := s.scoringRepo.ActiveTable(ctx)
	if err != nil {
		return LeagueOdds{}, fmt.Errorf("get active scoring table: %w", err)
	}
	if !exists {
		return LeagueOdds{}, fmt.Errorf("%w: no active scoring table", ErrDependencyUnavailable)
	}

	totals, err := s.standings.MemberTotals(ctx, leagueID, table)
	if err != nil {
		return LeagueOdds{}, err
	}

	weeks, err := s.weekRepo.List(ctx)
	if err != nil {
		return LeagueOdds{}, fmt.Errorf("list weeks: %w", err)
	}

	snapshot, err := s.projectionRepo.Snapshot(ctx)
	if err != nil {
		return LeagueOdds{}, fmt.Errorf("load projection snapshot: %w", err)
	}

	states := make([]MemberState, 0, len(members))
	for _, m := range members {
		picks, err := s.pickRepo.ListByMember(ctx, leagueID, m.ID)
		if err != nil {
			return LeagueOdds{}, fmt.Errorf("list picks member=%s: %w", m.ID, err)
		}
		states = append(states, MemberState{
			MemberID:      m.ID,
			CurrentPoints: totals[m.ID],
			UsedPlayers:   pick.UsedPlayers(picks),
		})
	}

	now := s.now().UTC()
	weeksRemaining := schedule.WeeksRemaining(weeks, now)

	result, err := s.engine.Run(ctx, snapshot, states, weeksRemaining)
	if err != nil {
		return LeagueOdds{}, err
	}

	poolSize := 0
	for _, p := range snapshot.Players {
		if !p.IsEliminated {
			poolSize++
		}
	}

	odds := LeagueOdds{
		LeagueID:         leagueID,
		CurrentWeekIndex: schedule.CurrentWeekIndex(weeks, now),
		WeeksRemaining:   weeksRemaining,
		Trials:           result.Trials,
		EliminatedTeams:  snapshot.EliminatedTeams(),
		PlayerPoolSize:   poolSize,
		ComputedAt:       now,
		Rows:             make([]OddsRow, 0, len(members)),
	}
	for _, m := range members {
		p := result.Probabilities[m.ID]
		odds.Rows = append(odds.Rows, OddsRow{
			MemberID:           m.ID,
			DisplayName:        m.DisplayName,
			AvatarURL:          m.AvatarURL,
			CurrentPoints:      math.Round(totals[m.ID]*10) / 10,
			WinProbability:     p,
			DisplayProbability: FormatProbability(p),
		})
	}

	sort.SliceStable(odds.Rows, func(i, j int) bool {
		if odds.Rows[i].WinProbability != odds.Rows[j].WinProbability {
			return odds.Rows[i].WinProbability > odds.Rows[j].WinProbability
		}
		return odds.Rows[i].DisplayName < odds.Rows[j].DisplayName
	})

	return odds, nil
}

// FormatProbability renders a win probability for display. Anything under
// one tenth of a percent, including exactly zero, shows as "<0.1%" so long
// shots never read as mathematically impossible.
func FormatProbability(p float64) string {
	if p < 0.001 {
		return "<0.1%"
	}
	return fmt.Sprintf("%.1f%%", p*100)
}
