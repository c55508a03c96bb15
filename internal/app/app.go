package app

import (
	"context"
	"fmt"
	"io"

	"gorm.io/gorm"

	"github.com/claon/claon-admin/internal/data/db"
	"github.com/claon/claon-admin/internal/http"
	"github.com/claon/claon-admin/internal/observability"
	"github.com/claon/claon-admin/internal/platform/cache"
	"github.com/claon/claon-admin/internal/platform/gcp"
	"github.com/claon/claon-admin/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Server   *http.Server
	Cfg      Config
	Repos    Repos
	Services Services
	Clients  Clients

	pg           *db.PostgresService
	otelShutdown func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel.toObservability())

	pg, err := db.NewPostgresService(log, cfg.Postgres.toDB())
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrate(); err != nil {
		_ = pg.Close()
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()
	sqlDB, err := theDB.DB()
	if err != nil {
		_ = pg.Close()
		log.Sync()
		return nil, fmt.Errorf("postgres handle: %w", err)
	}

	clients := wireClients(log, cfg)
	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet, clients)
	handlerset := wireHandlers(log, cfg, serviceset, sqlDB)
	middleware := wireMiddleware(log, serviceset)
	server := wireServer(log, cfg, handlerset, middleware)

	return &App{
		Log:          log,
		DB:           theDB,
		Server:       server,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Clients:      clients,
		pg:           pg,
		otelShutdown: otelShutdown,
	}, nil
}

// wireClients connects the optional backends. A failure is logged and the
// backend is left disabled.
func wireClients(log *logger.Logger, cfg Config) Clients {
	var clients Clients
	if cfg.RedisAddr != "" {
		store, err := cache.NewRedisStore(log, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, "claon-admin")
		if err != nil {
			log.Warn("redis unavailable, center name cache disabled", "error", err)
		} else {
			clients.Cache = store
		}
	}
	if cfg.UploadBucketName != "" {
		bucket, err := gcp.NewBucketService(log, cfg.bucketConfig())
		if err != nil {
			log.Warn("upload bucket unavailable, uploads disabled", "error", err)
		} else {
			clients.Bucket = bucket
		}
	} else {
		log.Warn("UPLOAD_GCS_BUCKET_NAME not set, uploads disabled")
	}
	return clients
}

// Run serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	addr := a.Cfg.Address()
	a.Log.Info("listening", "address", addr)
	return a.Server.Run(ctx, addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if closer, ok := a.Clients.Cache.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			a.Log.Warn("close cache", "error", err)
		}
	}
	if a.pg != nil {
		if err := a.pg.Close(); err != nil {
			a.Log.Warn("close postgres", "error", err)
		}
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil {
			a.Log.Warn("otel shutdown", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
