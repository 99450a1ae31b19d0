package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/maturitypath-backend/internal/data/db"
	apphttp "github.com/yungbote/maturitypath-backend/internal/http"
	"github.com/yungbote/maturitypath-backend/internal/observability"
	"github.com/yungbote/maturitypath-backend/internal/platform/envutil"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
	"github.com/yungbote/maturitypath-backend/internal/seed"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Server   *apphttp.Server
	Cfg      Config
	Repos    Repos
	Services Services

	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig()

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	theDB := pg.DB()
	if err := db.AutoMigrateAll(theDB); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}

	shutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "maturitypath",
		Environment: cfg.Environment,
		Version:     cfg.Version,
	})

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet)

	if cfg.SeedCatalog {
		err := seed.EnsureCatalog(
			context.Background(), theDB, log,
			reposet.Assessment, reposet.Dimension, reposet.Topic, reposet.Rule,
		)
		if err != nil {
			log.Sync()
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}

	handlerset := wireHandlers(log, serviceset)
	mw := wireMiddleware(log, serviceset)
	server := wireServer(log, handlerset, mw)

	return &App{
		Log:          log,
		DB:           theDB,
		Server:       server,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		otelShutdown: shutdown,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("starting http server", "addr", addr)
	return a.Server.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
