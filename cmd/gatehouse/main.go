package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"gatehouse/app"
	"gatehouse/core"
	"gatehouse/internal/config"
	"gatehouse/internal/database"
	"gatehouse/internal/database/repository"
	"gatehouse/internal/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("gatehouse: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closeLog, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path, migrationsPath()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	visitors := repository.NewVisitorRepo(db)
	activity := repository.NewActivityRepo(db)

	shell, err := app.BuildShell(cfg)
	if err != nil {
		return fmt.Errorf("building route table: %w", err)
	}

	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	commands := core.NewCommandRegistry(nil)

	model := core.NewModel(shell, app.Builders(visitors, activity, cfg), keys, commands, db, logger, core.DeskData{Location: cfg.UI.LocationName})
	app.ConfigureModel(&model, visitors, cfg)

	logger.Info().Str("db", cfg.Database.Path).Msg("gatehouse starting")
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info().Msg("gatehouse exiting")
	return nil
}

// migrationsPath resolves the migrations directory relative to the working
// directory, with an env override for packaged installs.
func migrationsPath() string {
	if p := os.Getenv("GATEHOUSE_MIGRATIONS"); p != "" {
		return p
	}
	return "migrations"
}
