package decider

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/romdeps/internal/core/ports"
)

// NodeID is the unique identifier for the decision provider factory node.
const NodeID graft.ID = "adapter.decider"

func init() {
	graft.Register(graft.Node[ports.DecisionProviderFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DecisionProviderFactory, error) {
			return NewFactory(os.Stderr), nil
		},
	})
}
