package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/projection"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/stats"
	"github.com/sirbenjaminG88/playoff-picks/internal/platform/logging"
)

// ProjectionProvider is the upstream stats feed. Fetches are independent
// and safe to run concurrently.
type ProjectionProvider interface {
	FetchProjections(ctx context.Context) ([]projection.Projection, error)
	FetchEliminatedTeams(ctx context.Context) ([]string, error)
	FetchStatLines(ctx context.Context, week int) ([]stats.Line, error)
}

type ProjectionSyncResult struct {
	PlayerCount     int
	EliminatedTeams int
	StatLineCount   int
	TakenAt         time.Time
}

type ProjectionSyncService struct {
	provider       ProjectionProvider
	projectionRepo projection.Repository
	statRepo       stats.Repository
	oddsCache      oddsCacheBuster
	leagueID       string
	logger         *logging.Logger
	now            func() time.Time
}

func NewProjectionSyncService(
	provider ProjectionProvider,
	projectionRepo projection.Repository,
	statRepo stats.Repository,
	leagueID string,
	logger *logging.Logger,
) *ProjectionSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ProjectionSyncService{
		provider:       provider,
		projectionRepo: projectionRepo,
		statRepo:       statRepo,
		leagueID:       leagueID,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *ProjectionSyncService) SetOddsCacheBuster(buster oddsCacheBuster) {
	s.oddsCache = buster
}

// Refresh pulls projections, elimination status and realized stat lines
// from the feed, swaps the projection snapshot wholesale, and busts the
// odds cache. The three upstream fetches run concurrently; any failure
// aborts the refresh before a single write happens.
func (s *ProjectionSyncService) Refresh(ctx context.Context, week int) (ProjectionSyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProjectionSyncService.Refresh")
	defer span.End()

	if s.provider == nil {
		return ProjectionSyncResult{}, fmt.Errorf("%w: stats feed is not configured", ErrDependencyUnavailable)
	}
	if week <= 0 {
		return ProjectionSyncResult{}, fmt.Errorf("%w: week must be greater than zero", ErrInvalidInput)
	}

	var (
		players    []projection.Projection
		eliminated []string
		lines      []stats.Line
	)

	fetch := pool.New().WithErrors().WithContext(ctx)
	fetch.Go(func(ctx context.Context) error {
		fetched, err := s.provider.FetchProjections(ctx)
		if err != nil {
			return fmt.Errorf("fetch projections: %w", err)
		}
		players = fetched
		return nil
	})
	fetch.Go(func(ctx context.Context) error {
		fetched, err := s.provider.FetchEliminatedTeams(ctx)
		if err != nil {
			return fmt.Errorf("fetch eliminated teams: %w", err)
		}
		eliminated = fetched
		return nil
	})
	fetch.Go(func(ctx context.Context) error {
		fetched, err := s.provider.FetchStatLines(ctx, week)
		if err != nil {
			return fmt.Errorf("fetch stat lines week=%d: %w", week, err)
		}
		lines = fetched
		return nil
	})
	if err := fetch.Wait(); err != nil {
		return ProjectionSyncResult{}, fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}

	eliminatedSet := make(map[string]struct{}, len(eliminated))
	for _, teamID := range eliminated {
		eliminatedSet[teamID] = struct{}{}
	}
	for i := range players {
		if _, gone := eliminatedSet[players[i].TeamID]; gone {
			players[i].IsEliminated = true
		}
	}

	snapshot := projection.Snapshot{
		TakenAt: s.now().UTC(),
		Players: players,
	}
	if err := s.projectionRepo.Replace(ctx, snapshot); err != nil {
		return ProjectionSyncResult{}, fmt.Errorf("replace projection snapshot: %w", err)
	}

	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return ProjectionSyncResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if err := s.statRepo.UpsertLines(ctx, lines); err != nil {
		return ProjectionSyncResult{}, fmt.Errorf("upsert stat lines: %w", err)
	}

	if s.oddsCache != nil {
		s.oddsCache.InvalidateLeague(ctx, s.leagueID)
	}

	s.logger.InfoContext(ctx, "projection refresh complete",
		"players", len(players),
		"eliminated_teams", len(eliminated),
		"stat_lines", len(lines),
		"week", week,
	)

	return ProjectionSyncResult{
		PlayerCount:     len(players),
		EliminatedTeams: len(eliminated),
		StatLineCount:   len(lines),
		TakenAt:         snapshot.TakenAt,
	}, nil
}
