package decider

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
	"go.trai.ch/romdeps/internal/ui/output"
	"go.trai.ch/zerr"
)

var _ ports.DecisionProvider = (*Checklist)(nil)

// Checklist asks the operator about pending libraries with a terminal
// checklist.
type Checklist struct {
	opts []tea.ProgramOption
}

// NewChecklist creates a Checklist drawing on w, defaulting to stderr. Extra
// program options are appended after the defaults.
func NewChecklist(w io.Writer, opts ...tea.ProgramOption) *Checklist {
	if w == nil {
		w = os.Stderr
	}
	lipgloss.SetColorProfile(output.New(w).Profile)

	all := append([]tea.ProgramOption{tea.WithOutput(w)}, opts...)
	return &Checklist{opts: all}
}

// Decide runs the checklist until the operator confirms or aborts.
func (c *Checklist) Decide(ctx context.Context, pending []string) (map[string]domain.Decision, error) {
	if len(pending) == 0 {
		return map[string]domain.Decision{}, nil
	}

	model := NewModel(pending)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, c.opts...)

	final, err := tea.NewProgram(model, opts...).Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDecisionFailed.Error())
	}

	m, ok := final.(*Model)
	if !ok || m.Aborted || !m.Confirmed {
		return nil, domain.ErrDecisionAborted
	}
	return m.Decisions(), nil
}
