package usecase

import (
	"testing"
	"time"

	"github.com/sirbenjaminG88/playoff-picks/internal/infrastructure/repository/memory"
	"github.com/sirbenjaminG88/playoff-picks/internal/platform/cache"
)

func newSimulationService(t *testing.T, now time.Time) (*SimulationService, *memory.PickRepository) {
	t.Helper()

	memberRepo := memory.NewMemberRepository(memory.SeedMembers())
	weekRepo := memory.NewWeekRepository(memory.SeedWeeks())
	pickRepo := memory.NewPickRepository()
	projectionRepo := memory.NewProjectionRepository(memory.SeedProjections())
	scoringRepo := memory.NewScoringRepository(memory.SeedScoringTable())
	statRepo := memory.NewStatLineRepository(memory.SeedStatLines())

	standings := NewStandingsService(memberRepo, pickRepo, statRepo, scoringRepo)
	engine := testEngine(2000, 13)
	store := cache.NewStore(time.Minute)

	svc := NewSimulationService(memberRepo, weekRepo, pickRepo, projectionRepo, scoringRepo, standings, engine, store)
	svc.now = func() time.Time { return now }
	return svc, pickRepo
}

func TestSimulationService_LeagueOdds(t *testing.T) {
	// Between weeks 1 and 2: three deadlines still ahead.
	now := time.Date(2027, 1, 10, 9, 0, 0, 0, time.UTC)
	svc, pickRepo := newSimulationService(t, now)
	seedWeekOnePicks(t, pickRepo)

	odds, err := svc.LeagueOdds(t.Context(), memory.LeagueIDDemoPlayoffs)
	if err != nil {
		t.Fatalf("league odds failed: %v", err)
	}

	if odds.WeeksRemaining != 3 {
		t.Fatalf("expected 3 weeks remaining, got %d", odds.WeeksRemaining)
	}
	if odds.CurrentWeekIndex != 1 {
		t.Fatalf("expected current week 1 between windows, got %d", odds.CurrentWeekIndex)
	}
	if len(odds.Rows) != 4 {
		t.Fatalf("expected 4 member rows, got %d", len(odds.Rows))
	}
	if len(odds.EliminatedTeams) != 2 {
		t.Fatalf("expected 2 eliminated teams in seed pool, got %v", odds.EliminatedTeams)
	}
	if odds.PlayerPoolSize != 24 {
		t.Fatalf("expected 24 live players in seed pool, got %d", odds.PlayerPoolSize)
	}

	total := 0.0
	for i, row := range odds.Rows {
		total += row.WinProbability
		if i > 0 && row.WinProbability > odds.Rows[i-1].WinProbability {
			t.Fatal("rows are not ordered by descending win probability")
		}
		if row.DisplayProbability == "" {
			t.Fatalf("missing display probability for %s", row.MemberID)
		}
	}
	if total < 0.999 || total > 1.001 {
		t.Fatalf("probability mass is %v, want ~1", total)
	}
}

func TestSimulationService_SettledSeasonEndToEnd(t *testing.T) {
	// After the final deadline nothing is left to simulate: the points
	// leader must show certainty and the trailer must show none.
	now := time.Date(2027, 2, 10, 9, 0, 0, 0, time.UTC)
	svc, pickRepo := newSimulationService(t, now)
	seedWeekOnePicks(t, pickRepo)

	odds, err := svc.LeagueOdds(t.Context(), memory.LeagueIDDemoPlayoffs)
	if err != nil {
		t.Fatalf("league odds failed: %v", err)
	}
	if odds.WeeksRemaining != 0 {
		t.Fatalf("expected settled season, got %d weeks remaining", odds.WeeksRemaining)
	}

	byMember := make(map[string]OddsRow, len(odds.Rows))
	for _, row := range odds.Rows {
		byMember[row.MemberID] = row
	}
	if got := byMember["mem-alice"].WinProbability; got != 1 {
		t.Fatalf("settled leader should have probability 1, got %v", got)
	}
	if got := byMember["mem-ben"].WinProbability; got != 0 {
		t.Fatalf("settled trailer should have probability 0, got %v", got)
	}
	if got := byMember["mem-ben"].DisplayProbability; got != "<0.1%" {
		t.Fatalf("zero probability should display as <0.1%%, got %s", got)
	}
}

func TestSimulationService_CachesAndInvalidates(t *testing.T) {
	now := time.Date(2027, 1, 10, 9, 0, 0, 0, time.UTC)
	svc, pickRepo := newSimulationService(t, now)

	first, err := svc.LeagueOdds(t.Context(), memory.LeagueIDDemoPlayoffs)
	if err != nil {
		t.Fatalf("first odds failed: %v", err)
	}

	// New picks land behind the cache; the cached result must be served
	// until invalidation.
	seedWeekOnePicks(t, pickRepo)

	cached, err := svc.LeagueOdds(t.Context(), memory.LeagueIDDemoPlayoffs)
	if err != nil {
		t.Fatalf("cached odds failed: %v", err)
	}
	if cached.ComputedAt != first.ComputedAt {
		t.Fatal("expected cached odds to be reused")
	}

	svc.InvalidateLeague(t.Context(), memory.LeagueIDDemoPlayoffs)

	fresh, err := svc.LeagueOdds(t.Context(), memory.LeagueIDDemoPlayoffs)
	if err != nil {
		t.Fatalf("fresh odds failed: %v", err)
	}
	found := false
	for _, row := range fresh.Rows {
		if row.MemberID == "mem-alice" && row.CurrentPoints > 0 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected recomputed odds to include realized points")
	}
}

func TestFormatProbability(t *testing.T) {
	cases := []struct {
		p    float64
		want string
	}{
		{p: 0, want: "<0.1%"},
		{p: 0.0004, want: "<0.1%"},
		{p: 0.001, want: "0.1%"},
		{p: 0.25, want: "25.0%"},
		{p: 1, want: "100.0%"},
	}
	for _, tc := range cases {
		if got := FormatProbability(tc.p); got != tc.want {
			t.Fatalf("FormatProbability(%v) = %s, want %s", tc.p, got, tc.want)
		}
	}
}
