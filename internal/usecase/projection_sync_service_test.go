package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/player"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/projection"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/scoring"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/stats"
	"github.com/sirbenjaminG88/playoff-picks/internal/infrastructure/repository/memory"
	"github.com/sirbenjaminG88/playoff-picks/internal/platform/logging"
)

type fakeProvider struct {
	projections []projection.Projection
	eliminated  []string
	lines       []stats.Line
	err         error
}

func (f *fakeProvider) FetchProjections(_ context.Context) ([]projection.Projection, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.projections, nil
}

func (f *fakeProvider) FetchEliminatedTeams(_ context.Context) ([]string, error) {
	return f.eliminated, nil
}

func (f *fakeProvider) FetchStatLines(_ context.Context, _ int) ([]stats.Line, error) {
	return f.lines, nil
}

type recordingBuster struct {
	leagueIDs []string
}

func (r *recordingBuster) InvalidateLeague(_ context.Context, leagueID string) {
	r.leagueIDs = append(r.leagueIDs, leagueID)
}

func TestProjectionSyncService_Refresh(t *testing.T) {
	provider := &fakeProvider{
		projections: []projection.Projection{
			{PlayerID: "kc-qb-01", Name: "Marcus Hale", TeamID: "KC", Position: player.PositionQuarterback, ProjectedPoints: 22.0},
			{PlayerID: "hou-qb-01", Name: "Reggie Calloway", TeamID: "HOU", Position: player.PositionQuarterback, ProjectedPoints: 17.5},
		},
		eliminated: []string{"HOU"},
		lines: []stats.Line{
			{PlayerID: "kc-qb-01", Week: 2, Line: scoring.StatLine{PassYards: 250, PassTDs: 2}},
		},
	}

	projectionRepo := memory.NewProjectionRepository(memory.SeedProjections())
	statRepo := memory.NewStatLineRepository(nil)
	buster := &recordingBuster{}

	svc := NewProjectionSyncService(provider, projectionRepo, statRepo, memory.LeagueIDDemoPlayoffs, logging.NewNop())
	svc.SetOddsCacheBuster(buster)

	result, err := svc.Refresh(t.Context(), 2)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if result.PlayerCount != 2 || result.EliminatedTeams != 1 || result.StatLineCount != 1 {
		t.Fatalf("unexpected result counts: %+v", result)
	}

	snapshot, err := projectionRepo.Snapshot(t.Context())
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if len(snapshot.Players) != 2 {
		t.Fatalf("expected snapshot to be replaced wholesale, got %d players", len(snapshot.Players))
	}
	for _, p := range snapshot.Players {
		if p.TeamID == "HOU" && !p.IsEliminated {
			t.Fatalf("elimination flag not propagated for %s", p.PlayerID)
		}
	}

	line, exists, err := statRepo.GetByPlayerWeek(t.Context(), "kc-qb-01", 2)
	if err != nil || !exists {
		t.Fatalf("expected stat line stored, exists=%t err=%v", exists, err)
	}
	if line.Line.PassYards != 250 {
		t.Fatalf("unexpected stored line: %+v", line)
	}

	if len(buster.leagueIDs) != 1 || buster.leagueIDs[0] != memory.LeagueIDDemoPlayoffs {
		t.Fatalf("odds cache was not invalidated: %v", buster.leagueIDs)
	}
}

func TestProjectionSyncService_FailedFetchWritesNothing(t *testing.T) {
	provider := &fakeProvider{err: errors.New("feed down")}

	seeded := memory.SeedProjections()
	projectionRepo := memory.NewProjectionRepository(seeded)
	statRepo := memory.NewStatLineRepository(nil)

	svc := NewProjectionSyncService(provider, projectionRepo, statRepo, memory.LeagueIDDemoPlayoffs, logging.NewNop())

	_, err := svc.Refresh(t.Context(), 2)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}

	snapshot, err := projectionRepo.Snapshot(t.Context())
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if len(snapshot.Players) != len(seeded.Players) {
		t.Fatal("failed refresh must not touch the stored snapshot")
	}
}

func TestProjectionSyncService_InvalidWeek(t *testing.T) {
	svc := NewProjectionSyncService(&fakeProvider{}, memory.NewProjectionRepository(projection.Snapshot{}), memory.NewStatLineRepository(nil), memory.LeagueIDDemoPlayoffs, logging.NewNop())

	_, err := svc.Refresh(t.Context(), 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
