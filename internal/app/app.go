// Package app implements the application layer for pakr.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/pakr/internal/core/domain"
	"go.trai.ch/pakr/internal/core/ports"
	"go.trai.ch/pakr/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App represents the main application logic. It exposes the two entry points
// the CLI builds on: loading a configuration and executing its commands.
type App struct {
	configLoader ports.ConfigLoader
	runner       *runner.Runner
	store        ports.ReportStore
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, run *runner.Runner, store ports.ReportStore, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		runner:       run,
		store:        store,
		logger:       logger,
	}
}

// Load reads the configuration document at the given path. Loading failures
// are fatal to the run: no command executes on a configuration that cannot
// be decoded.
func (a *App) Load(path string) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// Execute runs the configuration's commands in declared order and persists
// the resulting report. Per-command failures are isolated by the runner;
// the aggregate error reports how many of how many commands failed.
func (a *App) Execute(ctx context.Context, cfg *domain.Config) error {
	report := a.runner.RunAll(ctx, cfg.Commands)

	if err := a.store.Put(report); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to persist run report: %v", err))
	}

	if !report.OK() {
		err := zerr.Wrap(domain.ErrCommandsFailed, fmt.Sprintf("%d error(s) occurred in %d command(s)", report.Failed(), report.Total))
		err = zerr.With(err, "failed", report.Failed())
		return zerr.With(err, "total", report.Total)
	}

	a.logger.Info(fmt.Sprintf("all %d command(s) executed successfully", report.Total))
	return nil
}

// LastReport returns the persisted report of the most recent run, or nil if
// no run has been recorded.
func (a *App) LastReport() (*domain.RunReport, error) {
	return a.store.Last()
}
