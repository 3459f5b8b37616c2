package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pakr/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pakr/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pakr/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pakr/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pakr/internal/adapters/text"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pakr/internal/core/ports"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.CopierNodeID,
			text.NodeID,
			shell.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			copier, err := graft.Dep[ports.CopyExecutor](ctx)
			if err != nil {
				return nil, err
			}
			replacer, err := graft.Dep[ports.ReplaceExecutor](ctx)
			if err != nil {
				return nil, err
			}
			sh, err := graft.Dep[ports.ShellExecutor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(copier, replacer, sh, log, tracer), nil
		},
	})
}
