package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/alexanderramin/focusflow/internal/cli"
	"github.com/alexanderramin/focusflow/internal/config"
	"github.com/alexanderramin/focusflow/internal/db"
	"github.com/alexanderramin/focusflow/internal/notify"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env fills in variables not already set in the environment.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := config.Load(os.Getenv("FOCUSFLOW_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteSessionRepo(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	sessionSvc := service.NewSessionService(sessionRepo, observer)
	statsSvc := service.NewStatsService(sessionRepo, observer)

	app := &cli.App{
		Sessions: sessionSvc,
		Stats:    statsSvc,
		Config:   cfg,
		Notifier: notify.New(cfg.Notify, cfg.NotifySound),

		LogSession: sessionSvc,
		Dashboard:  statsSvc,
		Detail:     statsSvc,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
