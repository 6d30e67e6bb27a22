package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/romdeps/internal/adapters/fs"
	"go.trai.ch/romdeps/internal/adapters/logger"
	"go.trai.ch/romdeps/internal/core/ports"
)

// NodeID is the unique identifier for the projector node.
const NodeID graft.ID = "adapter.report"

func init() {
	graft.Register(graft.Node[ports.Projector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.CopierNodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Projector, error) {
			copier, err := graft.Dep[ports.ArtifactCopier](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProjector(copier, hasher, log), nil
		},
	})
}
