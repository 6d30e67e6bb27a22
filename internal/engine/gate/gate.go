// Package gate classifies discovered libraries against persisted approval
// decisions and collects the undecided ones for a decision round.
package gate

import (
	"context"
	"maps"
	"slices"
	"sync"

	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
)

// Outcome lists the decisions applied by one round.
type Outcome struct {
	Approved []string
	Rejected []string
	// Unpersisted are names that cannot be written to a decision file. Their
	// decision holds for the current process only.
	Unpersisted []string
}

// Applied returns the number of terminal decisions taken.
func (o Outcome) Applied() int {
	return len(o.Approved) + len(o.Rejected)
}

// Gate is safe for concurrent use.
type Gate struct {
	store   ports.ApprovalStore
	mu      sync.Mutex
	pending map[string]struct{}
	session map[string]domain.Decision
}

// New creates a Gate over store.
func New(store ports.ApprovalStore) *Gate {
	return &Gate{
		store:   store,
		pending: make(map[string]struct{}),
		session: make(map[string]domain.Decision),
	}
}

// Decide returns the decision for name. An undecided name joins the pending
// set; the gate never approves on its own.
func (g *Gate) Decide(name string) domain.Decision {
	g.mu.Lock()
	defer g.mu.Unlock()

	if d, ok := g.session[name]; ok {
		return d
	}
	d := g.store.Get(name)
	if !d.Final() {
		g.pending[name] = struct{}{}
	}
	return d
}

// Lookup returns the decision for name without adding it to the pending set.
func (g *Gate) Lookup(name string) domain.Decision {
	g.mu.Lock()
	defer g.mu.Unlock()

	if d, ok := g.session[name]; ok {
		return d
	}
	return g.store.Get(name)
}

// Pending returns the undecided names seen since the last reset, sorted.
func (g *Gate) Pending() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Sorted(maps.Keys(g.pending))
}

// SessionApproved returns the approvals that hold for this process only,
// sorted.
func (g *Gate) SessionApproved() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var out []string
	for name, d := range g.session {
		if d == domain.DecisionApproved {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// ResetPending clears the pending set.
func (g *Gate) ResetPending() {
	g.mu.Lock()
	defer g.mu.Unlock()
	clear(g.pending)
}

// Apply persists the terminal decisions in decisions. Names that already
// carry a decision keep it; persistence errors are fatal.
func (g *Gate) Apply(decisions map[string]domain.Decision) (Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var out Outcome
	for _, name := range slices.Sorted(maps.Keys(decisions)) {
		d := decisions[name]
		if !d.Final() {
			continue
		}
		if _, ok := g.session[name]; ok || g.store.Get(name).Final() {
			continue
		}

		if domain.ValidLibraryName(name) {
			if err := g.store.Set(name, d); err != nil {
				return out, err
			}
		} else {
			g.session[name] = d
			out.Unpersisted = append(out.Unpersisted, name)
		}

		if d == domain.DecisionApproved {
			out.Approved = append(out.Approved, name)
		} else {
			out.Rejected = append(out.Rejected, name)
		}
	}
	return out, nil
}

// Settle asks provider about the pending names, applies the answer and
// clears the pending set. Provider errors are returned unchanged.
func (g *Gate) Settle(ctx context.Context, provider ports.DecisionProvider) (Outcome, error) {
	pending := g.Pending()
	if len(pending) == 0 {
		return Outcome{}, nil
	}

	decisions, err := provider.Decide(ctx, pending)
	if err != nil {
		return Outcome{}, err
	}

	out, err := g.Apply(decisions)
	if err != nil {
		return out, err
	}
	g.ResetPending()
	return out, nil
}
