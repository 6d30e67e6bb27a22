package elf

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/romdeps/internal/core/ports"
)

// NodeID is the unique identifier for the metadata reader factory Graft node.
const NodeID graft.ID = "adapter.elf"

func init() {
	graft.Register(graft.Node[ports.MetadataReaderFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MetadataReaderFactory, error) {
			return NewFactory(), nil
		},
	})
}
