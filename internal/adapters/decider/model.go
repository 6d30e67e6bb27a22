package decider

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/ui/style"
)

// chromeHeight is the number of lines used by the title, summary and help.
const chromeHeight = 6

// Item is one pending library in the checklist.
type Item struct {
	Name    string
	Approve bool
}

// Model is the checklist shown for pending libraries. Every item starts
// checked; unchecked items are rejected on confirm.
type Model struct {
	Items      []Item
	Cursor     int
	Offset     int
	ListHeight int
	Confirmed  bool
	Aborted    bool
}

// NewModel creates a checklist for the given names.
func NewModel(names []string) *Model {
	items := make([]Item, len(names))
	for i, n := range names {
		items[i] = Item{Name: n, Approve: true}
	}
	return &Model{Items: items}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
//
//nolint:cyclop // one case per binding
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Abort):
			m.Aborted = true
			return m, tea.Quit
		case key.Matches(msg, keys.Confirm):
			m.Confirmed = true
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.Cursor > 0 {
				m.Cursor--
				m.ensureVisible()
			}
		case key.Matches(msg, keys.Down):
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
				m.ensureVisible()
			}
		case key.Matches(msg, keys.Toggle):
			if m.Cursor < len(m.Items) {
				m.Items[m.Cursor].Approve = !m.Items[m.Cursor].Approve
			}
		case key.Matches(msg, keys.ApproveAll):
			m.setAll(true)
		case key.Matches(msg, keys.RejectAll):
			m.setAll(false)
		}

	case tea.WindowSizeMsg:
		m.ListHeight = max(msg.Height-chromeHeight, 1)
		m.ensureVisible()
	}

	return m, nil
}

// Decisions returns the terminal decision for every item. It is empty unless
// the checklist was confirmed.
func (m *Model) Decisions() map[string]domain.Decision {
	out := make(map[string]domain.Decision, len(m.Items))
	if !m.Confirmed {
		return out
	}
	for _, it := range m.Items {
		if it.Approve {
			out[it.Name] = domain.DecisionApproved
		} else {
			out[it.Name] = domain.DecisionRejected
		}
	}
	return out
}

// View renders the checklist.
func (m *Model) View() string {
	if m.Confirmed || m.Aborted {
		return ""
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("PENDING LIBRARIES") + "\n\n")

	start, end := m.window()
	for i := start; i < end; i++ {
		s.WriteString(m.renderRow(i) + "\n")
	}

	approved := 0
	for _, it := range m.Items {
		if it.Approve {
			approved++
		}
	}
	s.WriteString("\n" + helpStyle.Render(fmt.Sprintf("%d approved, %d rejected", approved, len(m.Items)-approved)) + "\n")
	s.WriteString(helpStyle.Render(m.helpLine()))

	return s.String()
}

func (m *Model) renderRow(i int) string {
	it := m.Items[i]

	mark := approvedStyle.Render("[" + style.Check + "]")
	if !it.Approve {
		mark = rejectedStyle.Render("[" + style.Cross + "]")
	}

	cursor := "  "
	name := it.Name
	if i == m.Cursor {
		cursor = selectedStyle.Render("> ")
		name = selectedStyle.Render(name)
	}
	return cursor + mark + " " + name
}

func (m *Model) helpLine() string {
	parts := make([]string, 0, len(keys.help()))
	for _, b := range keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func (m *Model) window() (int, int) {
	if m.ListHeight <= 0 {
		return 0, len(m.Items)
	}
	start := m.Offset
	end := min(start+m.ListHeight, len(m.Items))
	if start > end {
		start = end
	}
	return start, end
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	} else if m.Cursor >= m.Offset+m.ListHeight {
		m.Offset = m.Cursor - m.ListHeight + 1
	}
}

func (m *Model) setAll(approve bool) {
	for i := range m.Items {
		m.Items[i].Approve = approve
	}
}
