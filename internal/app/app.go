package app

import (
	"context"
	"fmt"
	"net/http"

	"credo-app-go/internal/config"
	"credo-app-go/internal/db"
	"credo-app-go/internal/domain/recognition"
	"credo-app-go/internal/domain/stats"
	"credo-app-go/internal/domain/team"
	"credo-app-go/internal/notify"
	"credo-app-go/internal/repository/inmemory"
	recognitionrepo "credo-app-go/internal/repository/postgres/recognition"
	teamrepo "credo-app-go/internal/repository/postgres/team"
	"credo-app-go/internal/transport/httpserver"
	"credo-app-go/internal/transport/httpserver/handler"
	"credo-app-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	cfg := config.Load(log)
	log.Info("app: config loaded", "env", cfg.Env, "backend", cfg.StoreBackend)

	var (
		recRepo  recognition.Repository
		teamRepo team.Repository
		dbConn   *gorm.DB
	)

	switch cfg.StoreBackend {
	case config.BackendPostgres:
		conn, err := db.NewPostgres(cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(conn); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		dbConn = conn
		recRepo = recognitionrepo.NewPostgres(conn)
		teamRepo = teamrepo.NewPostgres(conn)
	case config.BackendMemory:
		recRepo = inmemory.NewRecognitionStore()
		teamRepo = inmemory.NewTeamStore()
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	hub := notify.NewHub(log)
	recognitions := recognition.NewService(recRepo, hub)
	teamService := team.NewService(teamRepo)
	statsService := stats.NewService(recRepo, teamRepo)

	if cfg.SeedEnabled {
		ctx := context.Background()
		if err := teamService.SeedIfEmpty(ctx, team.SampleMembers()); err != nil {
			return nil, fmt.Errorf("seed team members: %w", err)
		}
		if err := recognitions.SeedIfEmpty(ctx, recognition.SampleRecognitions()); err != nil {
			return nil, fmt.Errorf("seed recognitions: %w", err)
		}
	}

	handlers := handler.New(recognitions, teamService, statsService, hub, log)
	router := httpserver.NewRouter(handlers)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
