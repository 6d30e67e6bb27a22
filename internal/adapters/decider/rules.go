// Package decider provides the decision providers that settle pending libraries.
package decider

import (
	"context"
	"path/filepath"

	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DecisionProvider = (*Rules)(nil)

// Rules decides libraries by glob pattern. Reject patterns win over approve
// patterns; names matching neither are left undecided.
type Rules struct {
	approve []string
	reject  []string
}

// NewRules validates the patterns and returns a Rules provider.
func NewRules(approve, reject []string) (*Rules, error) {
	for _, p := range append(append([]string(nil), approve...), reject...) {
		if _, err := filepath.Match(p, ""); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", p)
		}
	}
	return &Rules{approve: approve, reject: reject}, nil
}

// Decide returns a decision for every pending name matched by a rule.
func (r *Rules) Decide(_ context.Context, pending []string) (map[string]domain.Decision, error) {
	out := make(map[string]domain.Decision)
	for _, name := range pending {
		switch {
		case matchAny(r.reject, name):
			out[name] = domain.DecisionRejected
		case matchAny(r.approve, name):
			out[name] = domain.DecisionApproved
		}
	}
	return out, nil
}

// Empty reports whether no rule is configured.
func (r *Rules) Empty() bool {
	return len(r.approve) == 0 && len(r.reject) == 0
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}
