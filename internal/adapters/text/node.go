package text

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pakr/internal/adapters/logger"
	"go.trai.ch/pakr/internal/core/ports"
)

// NodeID is the unique identifier for the Replacer Graft node.
const NodeID graft.ID = "adapter.replacer"

func init() {
	graft.Register(graft.Node[ports.ReplaceExecutor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ReplaceExecutor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewReplacer(log), nil
		},
	})
}
