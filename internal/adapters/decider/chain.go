package decider

import (
	"context"

	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
)

var _ ports.DecisionProvider = (*Chain)(nil)

// Chain asks each provider in turn about the names the previous ones left
// undecided.
type Chain struct {
	providers []ports.DecisionProvider
}

// NewChain creates a Chain.
func NewChain(providers ...ports.DecisionProvider) *Chain {
	return &Chain{providers: providers}
}

// Decide merges the terminal decisions of every provider.
func (c *Chain) Decide(ctx context.Context, pending []string) (map[string]domain.Decision, error) {
	out := make(map[string]domain.Decision, len(pending))
	remaining := pending

	for _, p := range c.providers {
		if len(remaining) == 0 {
			break
		}
		decided, err := p.Decide(ctx, remaining)
		if err != nil {
			return nil, err
		}

		next := remaining[:0:0]
		for _, name := range remaining {
			if d := decided[name]; d.Final() {
				out[name] = d
				continue
			}
			next = append(next, name)
		}
		remaining = next
	}
	return out, nil
}
