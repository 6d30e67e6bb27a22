package decider_test

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/romdeps/internal/adapters/decider"
	"go.trai.ch/romdeps/internal/core/domain"
)

func updateModel(m *decider.Model, msg tea.Msg) (*decider.Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(*decider.Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Update(t *testing.T) {
	names := []string{"liba.so", "libb.so", "libc.so"}

	t.Run("Defaults to approve", func(t *testing.T) {
		m := decider.NewModel(names)
		m, cmd := updateModel(m, tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)
		assert.True(t, m.Confirmed)

		assert.Equal(t, map[string]domain.Decision{
			"liba.so": domain.DecisionApproved,
			"libb.so": domain.DecisionApproved,
			"libc.so": domain.DecisionApproved,
		}, m.Decisions())
	})

	t.Run("Navigation and toggle", func(t *testing.T) {
		m := decider.NewModel(names)

		m, _ = updateModel(m, runes("j"))
		assert.Equal(t, 1, m.Cursor)
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
		assert.False(t, m.Items[1].Approve)

		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyDown})
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, 2, m.Cursor, "cursor stops at the last item")

		m, _ = updateModel(m, runes("k"))
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyUp})
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyUp})
		assert.Equal(t, 0, m.Cursor, "cursor stops at the first item")

		m, _ = updateModel(m, runes("x"))
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, map[string]domain.Decision{
			"liba.so": domain.DecisionRejected,
			"libb.so": domain.DecisionRejected,
			"libc.so": domain.DecisionApproved,
		}, m.Decisions())
	})

	t.Run("Bulk keys", func(t *testing.T) {
		m := decider.NewModel(names)
		m, _ = updateModel(m, runes("r"))
		for _, it := range m.Items {
			assert.False(t, it.Approve)
		}
		m, _ = updateModel(m, runes("a"))
		for _, it := range m.Items {
			assert.True(t, it.Approve)
		}
	})

	t.Run("Abort decides nothing", func(t *testing.T) {
		for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
			m := decider.NewModel(names)
			m, cmd := updateModel(m, msg)
			require.NotNil(t, cmd)
			assert.True(t, m.Aborted)
			assert.Empty(t, m.Decisions())
		}
	})

	t.Run("Scrolling window", func(t *testing.T) {
		many := make([]string, 20)
		for i := range many {
			many[i] = "lib" + strings.Repeat("x", i+1) + ".so"
		}
		m := decider.NewModel(many)
		m, _ = updateModel(m, tea.WindowSizeMsg{Width: 80, Height: 10})
		require.Positive(t, m.ListHeight)

		for range 15 {
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyDown})
		}
		assert.Equal(t, 15, m.Cursor)
		assert.LessOrEqual(t, m.Offset, m.Cursor)
		assert.Less(t, m.Cursor, m.Offset+m.ListHeight)

		view := m.View()
		assert.Contains(t, view, many[15])
		assert.NotContains(t, view, many[0]+"\n")
	})
}

func TestModel_View(t *testing.T) {
	m := decider.NewModel([]string{"liba.so", "libb.so"})
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})

	view := m.View()
	assert.Contains(t, view, "PENDING LIBRARIES")
	assert.Contains(t, view, "liba.so")
	assert.Contains(t, view, "libb.so")
	assert.Contains(t, view, "1 approved, 1 rejected")
	assert.Contains(t, view, "enter confirm")

	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.View())
}

func newTestChecklist(input string) *decider.Checklist {
	return decider.NewChecklist(io.Discard,
		tea.WithInput(strings.NewReader(input)),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
}

func TestChecklist_Decide(t *testing.T) {
	t.Run("Confirm", func(t *testing.T) {
		got, err := newTestChecklist("\r").Decide(context.Background(), []string{"liba.so"})
		require.NoError(t, err)
		assert.Equal(t, map[string]domain.Decision{"liba.so": domain.DecisionApproved}, got)
	})

	t.Run("Abort", func(t *testing.T) {
		_, err := newTestChecklist("q").Decide(context.Background(), []string{"liba.so"})
		require.ErrorIs(t, err, domain.ErrDecisionAborted)
	})

	t.Run("Nothing pending", func(t *testing.T) {
		got, err := newTestChecklist("").Decide(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := newTestChecklist("").Decide(ctx, []string{"liba.so"})
		require.ErrorIs(t, err, context.Canceled)
	})
}
