package approvals

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/romdeps/internal/core/ports"
)

// NodeID is the unique identifier for the approval store opener Graft node.
const NodeID graft.ID = "adapter.approvals"

func init() {
	graft.Register(graft.Node[ports.ApprovalStoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ApprovalStoreOpener, error) {
			return NewOpener(), nil
		},
	})
}
