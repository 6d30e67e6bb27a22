package decider

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/romdeps/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	approvedStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	rejectedStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate)
)
