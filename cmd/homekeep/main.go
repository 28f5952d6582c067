package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/homekeep/internal/reminder"
	"github.com/sandeepkv93/homekeep/internal/seed"
	"github.com/sandeepkv93/homekeep/internal/service"
	"github.com/sandeepkv93/homekeep/internal/settings"
	"github.com/sandeepkv93/homekeep/internal/storage"
	"github.com/sandeepkv93/homekeep/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "homekeep failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir %s: %w", dataDir, err)
	}

	logFile, err := os.OpenFile(filepath.Join(dataDir, "homekeep.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	log := slog.New(slog.NewJSONHandler(logFile, nil))

	repo, err := storage.OpenSQLite(filepath.Join(dataDir, "homekeep.db"))
	if err != nil {
		return err
	}
	defer repo.Close()
	if err := storage.MigrateUp(repo.DB()); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	settingsPath := filepath.Join(dataDir, "settings.yaml")
	cfg, err := settings.Load(settingsPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	seeder := seed.NewSeeder(repo, log)
	// A seed failure leaves an incomplete catalog, not an unusable app.
	if err := seeder.SeedIfNeeded(ctx); err != nil {
		log.Error("catalog seeding failed", "error", err)
	}

	engine := reminder.NewEngine(reminder.ExecDesktopNotifier{}, log)
	engine.Start()
	defer engine.Stop()

	sched := reminder.NewScheduler(engine, log)
	svc := service.NewTaskService(repo, sched, log)
	if err := svc.RescheduleAll(ctx, cfg); err != nil {
		log.Warn("initial reminder scheduling failed", "error", err)
	}

	authorized := engine.AuthorizationStatus(ctx)
	program := tea.NewProgram(update.NewModel(svc, seeder, cfg, settingsPath, authorized))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

func resolveDataDir() (string, error) {
	if dir := os.Getenv("HOMEKEEP_DATA_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home dir: %w", err)
	}
	return filepath.Join(home, ".homekeep"), nil
}
