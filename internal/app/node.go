package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pakr/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/pakr/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/pakr/internal/adapters/state"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pakr/internal/core/ports"
	"go.trai.ch/pakr/internal/engine/runner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components aggregates the wired application with the adapters the CLI
// needs direct access to.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			runner.NodeID,
			state.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			run, err := graft.Dep[*runner.Runner](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ReportStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, run, store, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
