package main

import (
	"fmt"
	"os"

	"github.com/boppreh/workspace/internal/cli"
	"github.com/boppreh/workspace/internal/config"
	"github.com/boppreh/workspace/internal/db"
	"github.com/boppreh/workspace/internal/log"
	"github.com/boppreh/workspace/internal/registry"
	"github.com/boppreh/workspace/internal/repository"
	"github.com/boppreh/workspace/internal/service"
	"github.com/boppreh/workspace/internal/vcs"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	git := vcs.NewGit()
	regCfg := registry.LoadConfig()
	if cfg.Registries.TimeoutMs > 0 {
		regCfg.TimeoutMs = cfg.Registries.TimeoutMs
	}
	if ttl, ok := cfg.Registries.CacheTTLDuration(); ok {
		regCfg.CacheTTL = ttl
	}
	registryClient := registry.NewClient(
		regCfg,
		registry.NewLogObserver(log.WithComponent("registry")),
	)

	scanSvc := service.NewScanService(git, uow)

	app := &cli.App{
		Scans:     scanSvc,
		Projects:  service.NewProjectService(projectRepo),
		Status:    service.NewStatusService(projectRepo, git),
		Freshness: service.NewFreshnessService(projectRepo, registryClient, cfg.Registries),
		Export:    service.NewExportService(projectRepo),
		Watch:     service.NewWatchService(scanSvc),

		Config: cfg,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
