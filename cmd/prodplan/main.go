package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/prodplan/internal/cli"
	"github.com/alexanderramin/prodplan/internal/config"
	"github.com/alexanderramin/prodplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Settings: .env in the working directory, then PRODPLAN_* environment
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	logOut, closeLog, err := cfg.OpenLog()
	if err != nil {
		return err
	}
	defer closeLog()
	logger := cfg.NewLogger(logOut)

	// Open storage
	storage, err := config.OpenStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer storage.Close()
	logger.DebugContext(ctx, "storage opened", "backend", cfg.Backend, "slot", cfg.SlotKey)

	// Wire services
	observer := service.NewLogUseCaseObserver(logger)
	plans := service.NewPlanService(storage.Slot, cfg.SlotKey,
		service.WithLogger(logger),
		service.WithLocation(loc),
		service.WithObserver(observer),
	)

	app := &cli.App{
		Plans:         plans,
		Confirm:       service.NewConfirmationService(plans),
		Export:        service.NewExportService(plans, observer),
		ExportDir:     cfg.ExportDir,
		IsInteractive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	// Execute root command
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
