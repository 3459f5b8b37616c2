package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pakr/internal/adapters/logger"
	"go.trai.ch/pakr/internal/core/ports"
)

// NodeID is the unique identifier for the shell executor Graft node.
const NodeID graft.ID = "adapter.shell_executor"

func init() {
	graft.Register(graft.Node[ports.ShellExecutor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ShellExecutor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})
}
