package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-latex/internal/generate"
	"resume-latex/internal/generations"
	"resume-latex/internal/services/health"
	"resume-latex/internal/shared/config"
	"resume-latex/internal/shared/server"
	"resume-latex/internal/shared/server/middleware"
	"resume-latex/internal/shared/storage/db"
	"resume-latex/internal/shared/telemetry"
)

// App holds shared dependencies for the API process.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	GenerationsRepo    generations.Repo
	GenerateService    *generate.Service
	GenerateHandler    *generate.Handler
	GenerationsHandler *generations.Handler
	Health             *health.Service
}

// Build wires storage, services, handlers and the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		GenerateHandler:    app.GenerateHandler,
		GenerationsHandler: app.GenerationsHandler,
		Health:             app.Health,
		Limiter:            middleware.NewRateLimiter(nil),
	})
	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if !cfg.AuditEnabled {
		return nil, nil
	}
	if cfg.DatabaseURL == "" {
		if cfg.IsDevLike() {
			telemetry.Info("bootstrap.memory_audit", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required when ENV=%s", cfg.Env)
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			_ = sqlDB.Close()
			err = fmt.Errorf("run migrations: %w", err)
		}
	}
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_audit", map[string]any{"reason": "database unavailable", "error": err})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildServices(app *App) {
	audit := health.AuditDisabled
	if app.Config.AuditEnabled {
		if app.DB != nil {
			app.GenerationsRepo = &generations.PGRepo{DB: app.DB}
			audit = health.AuditPostgres
		} else {
			app.GenerationsRepo = generations.NewMemoryRepo()
			audit = health.AuditMemory
		}
		app.GenerationsHandler = generations.NewHandler(app.GenerationsRepo)
	}
	if app.DB != nil {
		app.Health = health.NewService(app.DB, audit)
	} else {
		app.Health = health.NewService(nil, audit)
	}

	app.GenerateService = generate.NewService(app.GenerationsRepo)
	app.GenerateHandler = generate.NewHandler(app.GenerateService)
}
