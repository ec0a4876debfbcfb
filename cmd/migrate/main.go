package main

// Run database migrations:
//   go run ./cmd/migrate

import (
	"context"
	"os"

	"resume-latex/internal/shared/config"
	"resume-latex/internal/shared/storage/db"
	"resume-latex/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Configure(cfg.Env)
	defer telemetry.Sync()
	ctx := context.Background()

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"error": err})
		telemetry.Sync()
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"error": err})
		telemetry.Sync()
		os.Exit(1)
	}
	telemetry.Info("migrate.done", nil)
}
