package decider

import (
	"context"

	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
)

var _ ports.DecisionProvider = (*Policy)(nil)

// Policy applies one fixed decision to every pending library. It is the
// explicit default when nobody can be asked.
type Policy struct {
	policy domain.Policy
}

// NewPolicy creates a Policy provider.
func NewPolicy(p domain.Policy) (*Policy, error) {
	parsed, err := domain.ParsePolicy(string(p))
	if err != nil {
		return nil, err
	}
	return &Policy{policy: parsed}, nil
}

// Decide approves or rejects every pending name, or decides nothing under
// the defer policy.
func (p *Policy) Decide(_ context.Context, pending []string) (map[string]domain.Decision, error) {
	var d domain.Decision
	switch p.policy {
	case domain.PolicyApprove:
		d = domain.DecisionApproved
	case domain.PolicyReject:
		d = domain.DecisionRejected
	default:
		return map[string]domain.Decision{}, nil
	}

	out := make(map[string]domain.Decision, len(pending))
	for _, name := range pending {
		out[name] = d
	}
	return out, nil
}
