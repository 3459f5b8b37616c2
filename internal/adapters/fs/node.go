package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pakr/internal/adapters/logger"
	"go.trai.ch/pakr/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the Hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs_hasher"
	// CopierNodeID is the unique identifier for the Copier Graft node.
	CopierNodeID graft.ID = "adapter.fs_copier"
)

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.CopyExecutor]{
		ID:        CopierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CopyExecutor, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCopier(hasher, log), nil
		},
	})
}
