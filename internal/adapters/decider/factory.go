package decider

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
)

var _ ports.DecisionProviderFactory = (*Factory)(nil)

// Factory builds the provider chain for a run: configured rules first, then
// the checklist when a terminal is attached or the policy otherwise.
type Factory struct {
	out  io.Writer
	opts []tea.ProgramOption
}

// NewFactory creates a Factory whose checklist draws on out.
func NewFactory(out io.Writer, opts ...tea.ProgramOption) *Factory {
	return &Factory{out: out, opts: opts}
}

// New returns the provider chain for cfg.
func (f *Factory) New(cfg domain.DecisionConfig, interactive bool) (ports.DecisionProvider, error) {
	rules, err := NewRules(cfg.Approve, cfg.Reject)
	if err != nil {
		return nil, err
	}

	var fallback ports.DecisionProvider
	if interactive {
		fallback = NewChecklist(f.out, f.opts...)
	} else {
		policy, err := NewPolicy(cfg.NonInteractive)
		if err != nil {
			return nil, err
		}
		fallback = policy
	}

	if rules.Empty() {
		return fallback, nil
	}
	return NewChain(rules, fallback), nil
}
