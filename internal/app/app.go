package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/sirbenjaminG88/playoff-picks/external/jobqueue"
	"github.com/sirbenjaminG88/playoff-picks/external/statsfeed"
	"github.com/sirbenjaminG88/playoff-picks/internal/config"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/member"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/pick"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/projection"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/schedule"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/scoring"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/stats"
	repocache "github.com/sirbenjaminG88/playoff-picks/internal/infrastructure/repository/cache"
	"github.com/sirbenjaminG88/playoff-picks/internal/infrastructure/repository/memory"
	"github.com/sirbenjaminG88/playoff-picks/internal/infrastructure/repository/postgres"
	"github.com/sirbenjaminG88/playoff-picks/internal/interfaces/httpapi"
	"github.com/sirbenjaminG88/playoff-picks/internal/platform/cache"
	idgen "github.com/sirbenjaminG88/playoff-picks/internal/platform/id"
	"github.com/sirbenjaminG88/playoff-picks/internal/platform/logging"
	"github.com/sirbenjaminG88/playoff-picks/internal/platform/resilience"
	"github.com/sirbenjaminG88/playoff-picks/internal/usecase"
)

type repositories struct {
	members     member.Repository
	weeks       schedule.Repository
	picks       pick.Repository
	projections projection.Repository
	scoring     scoring.Repository
	statLines   stats.Repository
}

// NewHTTPServer wires repositories, services and the router into a ready
// http.Server. The returned cleanup releases storage resources and must be
// called after the server stops.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}
	appLogger := logging.Default()

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	pickService := usecase.NewPickService(repos.members, repos.weeks, repos.picks, repos.projections, idgen.NewRandomGenerator())
	scheduleService := usecase.NewScheduleService(repos.members, repos.weeks, repos.picks)
	standingsService := usecase.NewStandingsService(repos.members, repos.picks, repos.statLines, repos.scoring)

	engine := usecase.NewSimulationEngine(usecase.EngineConfig{
		Trials:         cfg.SimTrials,
		Workers:        cfg.SimWorkers,
		VarianceFactor: cfg.SimVarianceFactor,
		Seed:           cfg.SimSeed,
	}, appLogger)
	simulationService := usecase.NewSimulationService(
		repos.members,
		repos.weeks,
		repos.picks,
		repos.projections,
		repos.scoring,
		standingsService,
		engine,
		cache.NewStore(cfg.OddsCacheTTL),
	)
	pickService.SetOddsCacheBuster(simulationService)

	var projectionSync *usecase.ProjectionSyncService
	if cfg.StatsFeedEnabled {
		feed := statsfeed.NewClient(statsfeed.ClientConfig{
			BaseURL:    cfg.StatsFeedBaseURL,
			Token:      cfg.StatsFeedToken,
			Timeout:    cfg.StatsFeedTimeout,
			MaxRetries: cfg.StatsFeedMaxRetries,
			Logger:     appLogger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.StatsFeedCircuitEnabled,
				FailureThreshold: cfg.StatsFeedCircuitFailureCount,
				OpenTimeout:      cfg.StatsFeedCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.StatsFeedCircuitHalfOpenMaxReq,
			},
		})
		projectionSync = usecase.NewProjectionSyncService(feed, repos.projections, repos.statLines, cfg.LeagueID, appLogger)
		projectionSync.SetOddsCacheBuster(simulationService)
	} else {
		logger.Info("stats feed disabled, projection refresh endpoint will report unavailable")
	}

	if cfg.QStashEnabled {
		publisher := jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
			BaseURL:          cfg.QStashBaseURL,
			Token:            cfg.QStashToken,
			TargetBaseURL:    cfg.QStashTargetBaseURL,
			Retries:          cfg.QStashRetries,
			InternalJobToken: cfg.InternalJobToken,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.QStashCircuitEnabled,
				FailureThreshold: cfg.QStashCircuitFailureCount,
				OpenTimeout:      cfg.QStashCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.QStashCircuitHalfOpenMaxReq,
			},
		}, logger)
		scheduleProjectionRefreshes(context.Background(), publisher, repos.weeks, logger)
	}

	handler := httpapi.NewHandler(pickService, scheduleService, standingsService, simulationService, projectionSync, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *slog.Logger) (repositories, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		return repositories{
			members:     memory.NewMemberRepository(memory.SeedMembers()),
			weeks:       memory.NewWeekRepository(memory.SeedWeeks()),
			picks:       memory.NewPickRepository(),
			projections: memory.NewProjectionRepository(memory.SeedProjections()),
			scoring:     memory.NewScoringRepository(memory.SeedScoringTable()),
			statLines:   memory.NewStatLineRepository(memory.SeedStatLines()),
		}, noop, nil

	case config.StorageDriverPostgres:
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, nil, err
		}

		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := postgres.BootstrapSeed(seedCtx, db); err != nil {
			_ = db.Close()
			return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
		}

		repos := repositories{
			members:     postgres.NewMemberRepository(db),
			weeks:       postgres.NewWeekRepository(db),
			picks:       postgres.NewPickRepository(db),
			projections: postgres.NewProjectionRepository(db),
			scoring:     postgres.NewScoringRepository(db),
			statLines:   postgres.NewStatLineRepository(db),
		}
		if cfg.CacheEnabled {
			store := cache.NewStore(cfg.CacheTTL)
			repos.members = repocache.NewMemberRepository(repos.members, store)
			repos.weeks = repocache.NewWeekRepository(repos.weeks, store)
			repos.picks = repocache.NewPickRepository(repos.picks, store)
			repos.projections = repocache.NewProjectionRepository(repos.projections, store)
			repos.scoring = repocache.NewScoringRepository(repos.scoring, store)
		}

		logger.Info("postgres storage ready", "db", dbNameFromURL(cfg.DBURL), "cache_enabled", cfg.CacheEnabled)
		return repos, db.Close, nil

	default:
		return repositories{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(cfg.DBURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Connect("postgres", dsn, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// scheduleProjectionRefreshes enqueues one delayed refresh per remaining
// week deadline. Deduplication ids make this safe across restarts. Failures
// are logged and do not block startup; the internal endpoint stays callable
// by hand.
func scheduleProjectionRefreshes(ctx context.Context, publisher *jobqueue.QStashPublisher, weekRepo schedule.Repository, logger *slog.Logger) {
	weeks, err := weekRepo.List(ctx)
	if err != nil {
		logger.Warn("list weeks for refresh scheduling failed", "error", err)
		return
	}

	now := time.Now()
	for _, week := range weeks {
		if !week.DeadlineAt.After(now) {
			continue
		}
		delay := week.DeadlineAt.Sub(now)
		if err := publisher.EnqueueRefreshProjections(ctx, week.Index, delay); err != nil {
			logger.Warn("enqueue projection refresh failed", "week", week.Index, "error", err)
			continue
		}
		logger.Info("projection refresh scheduled", "week", week.Index, "delay", delay.Round(time.Second).String())
	}
}
