package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fireDispatch/internal/api"
	"fireDispatch/internal/api/handlers/http/system"
	"fireDispatch/internal/config"
	natspub "fireDispatch/internal/nats"
	"fireDispatch/internal/notify"
	"fireDispatch/internal/redis"
	"fireDispatch/internal/render"
	"fireDispatch/internal/service"
	"fireDispatch/internal/storage/memory"
	"fireDispatch/internal/storage/postgres"
	"fireDispatch/internal/workers"
	"fireDispatch/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Services   *service.Service
	Sweeper    *workers.UnitSweeper
	Webhooks   *service.WebhookSender // nil when webhooks are disabled
	Postgres   *postgres.Postgres     // nil with the memory driver
	Redis      *redis.Redis
	NATS       *natspub.Publisher
}

// Repositories is the storage seen by the services, whichever driver
// backs it.
type Repositories struct {
	Stations    service.StationRepository
	Alerts      service.AlertRepository
	Incidents   service.IncidentRepository
	Departments service.DepartmentRepository
	Units       service.UnitRepository
	Reporters   service.ReporterRepository
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger}
	checks := make(map[string]system.Pinger)

	repos, err := c.initStorage(ctx, cfg, checks)
	if err != nil {
		c.ShutdownAll()
		return nil, err
	}

	if needsRedis(cfg) {
		logger.Info("Initializing Redis")
		c.Redis, err = redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		checks["redis"] = c.Redis
	}

	publisher, err := c.initPublisher(cfg)
	if err != nil {
		c.ShutdownAll()
		return nil, err
	}

	loc, err := cfg.Scheduler.Location()
	if err != nil {
		c.ShutdownAll()
		return nil, err
	}
	hour, minute, err := cfg.Scheduler.Clock()
	if err != nil {
		c.ShutdownAll()
		return nil, err
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		c.ShutdownAll()
		return nil, fmt.Errorf("failed to init turnout templates: %w", err)
	}

	var cache service.StationDirectoryCache
	if c.Redis != nil {
		sc := redis.NewStationCache(c.Redis)
		// Reference data may have changed while we were down.
		if err := sc.Invalidate(ctx); err != nil {
			logger.Warn("station directory cache invalidate failed", slog.Any("error", err))
		}
		cache = sc
	}

	c.Services = NewServices(repos, ServiceOptions{
		Cache:    cache,
		Notifier: notify.NewFanout(publisher, logger),
		Slips:    render.NewTurnoutGenerator(renderer),
		Logger:   logger,
		Location: loc,
		MatchKM:  cfg.Stations.MatchRadiusKM,
		CacheTTL: cfg.Stations.CacheTTL,
	})

	c.Sweeper = workers.NewUnitSweeper(c.Services.Units, logger, hour, minute, loc, !cfg.Scheduler.Disabled)

	if !cfg.Webhook.Disabled {
		c.Webhooks = service.NewWebhookSender(logger, cfg.Webhook, redis.NewWebhookQueue(c.Redis.Client, cfg.Webhook.QueueKey))
	}

	c.HttpServer = api.NewServer(ctx, cfg, logger, c.Services, c.Sweeper, checks)
	logger.Info("Initialized server")

	return c, nil
}

type ServiceOptions struct {
	Cache    service.StationDirectoryCache
	Notifier service.Notifier
	Slips    service.TurnoutSlipGenerator
	Logger   *slog.Logger
	Clock    service.Clock
	Location *time.Location
	MatchKM  float64
	CacheTTL time.Duration
}

// NewServices builds the lifecycle services over repos.
func NewServices(repos Repositories, opts ServiceOptions) *service.Service {
	l := opts.Logger

	guard := service.NewStationGuard(repos.Stations, repos.Alerts, repos.Incidents, l)
	flags := service.NewStationFlags(repos.Stations, repos.Alerts, repos.Incidents, l)
	resolver := service.NewStationResolver(repos.Stations, opts.Cache, l, opts.MatchKM, opts.CacheTTL)

	incidents := service.NewIncidentService(repos.Incidents, repos.Alerts, repos.Stations, repos.Departments,
		repos.Units, repos.Reporters, opts.Slips, flags, opts.Notifier, l, opts.Clock)
	alerts := service.NewAlertService(repos.Alerts, repos.Stations, repos.Reporters, repos.Units,
		guard, resolver, incidents, flags, opts.Notifier, l, opts.Clock)
	units := service.NewUnitService(repos.Units, repos.Departments, l, opts.Clock, opts.Location)
	stats := service.NewStatsService(repos.Stations, repos.Alerts, repos.Incidents)

	return service.NewService(guard, alerts, incidents, units, stats)
}

func (c *Components) initStorage(ctx context.Context, cfg *config.Config, checks map[string]system.Pinger) (Repositories, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		c.logger.Info("Initializing in-memory storage")
		store := memory.New()
		if cfg.Storage.SeedFile != "" {
			f, err := os.Open(cfg.Storage.SeedFile)
			if err != nil {
				return Repositories{}, fmt.Errorf("open memory seed: %w", err)
			}
			defer f.Close()
			if err := store.LoadSeed(f); err != nil {
				return Repositories{}, err
			}
		}
		return Repositories{
			Stations:    store.Stations(),
			Alerts:      store.Alerts(),
			Incidents:   store.Incidents(),
			Departments: store.Departments(),
			Units:       store.Units(),
			Reporters:   store.Reporters(),
		}, nil

	default:
		c.logger.Info("Initializing Postgres")
		pg, err := postgres.NewPostgres(ctx, cfg, c.logger)
		if err != nil {
			c.logger.Error("Failed to init postgres", slog.Any("error", err))
			return Repositories{}, fmt.Errorf("failed to init postgres: %w", err)
		}
		c.Postgres = pg
		checks["postgres"] = pg
		return Repositories{
			Stations:    pg.Stations,
			Alerts:      pg.Alerts,
			Incidents:   pg.Incidents,
			Departments: pg.Departments,
			Units:       pg.Units,
			Reporters:   pg.Reporters,
		}, nil
	}
}

func (c *Components) initPublisher(cfg *config.Config) (notify.Publisher, error) {
	var rooms notify.Publisher
	switch cfg.Events.Publisher {
	case config.PublisherRedis:
		rooms = redis.NewPublisher(c.Redis.Client, cfg.Events.ChannelPrefix)
	case config.PublisherNATS:
		c.logger.Info("Connecting to NATS", slog.String("url", cfg.NATS.URL))
		p, err := natspub.Connect(cfg.NATS, cfg.Events.ChannelPrefix, c.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init nats: %w", err)
		}
		c.NATS = p
		rooms = p
	default:
		rooms = notify.Discard{}
	}

	if cfg.Webhook.Disabled {
		return rooms, nil
	}
	return notify.Multi{rooms, redis.NewWebhookQueue(c.Redis.Client, cfg.Webhook.QueueKey)}, nil
}

func needsRedis(cfg *config.Config) bool {
	return cfg.Events.Publisher == config.PublisherRedis || !cfg.Webhook.Disabled
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	if c.NATS != nil {
		if err := c.NATS.Close(); err != nil {
			c.logger.Error("NATS close failed", slog.String("err", err.Error()))
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}
	if c.Postgres != nil {
		c.Postgres.Close()
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
