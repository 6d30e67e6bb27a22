package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/romdeps/internal/adapters/detector"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		env      detector.Environment
		expected detector.Mode
	}{
		{
			name:     "both terminals",
			env:      detector.Environment{StdinTTY: true, StdoutTTY: true},
			expected: detector.ModeInteractive,
		},
		{
			name:     "CI=true forces non-interactive",
			env:      detector.Environment{StdinTTY: true, StdoutTTY: true, CI: "true"},
			expected: detector.ModeNonInteractive,
		},
		{
			name:     "CI=1 forces non-interactive",
			env:      detector.Environment{StdinTTY: true, StdoutTTY: true, CI: "1"},
			expected: detector.ModeNonInteractive,
		},
		{
			name:     "CI=false is ignored",
			env:      detector.Environment{StdinTTY: true, StdoutTTY: true, CI: "false"},
			expected: detector.ModeInteractive,
		},
		{
			name:     "piped stdin",
			env:      detector.Environment{StdoutTTY: true},
			expected: detector.ModeNonInteractive,
		},
		{
			name:     "redirected stdout",
			env:      detector.Environment{StdinTTY: true},
			expected: detector.ModeNonInteractive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.Detect(tt.env))
		})
	}
}

func TestResolveMode(t *testing.T) {
	assert.Equal(t, detector.ModeNonInteractive, detector.ResolveMode(detector.ModeInteractive, true))
	assert.Equal(t, detector.ModeInteractive, detector.ResolveMode(detector.ModeInteractive, false))
	assert.Equal(t, detector.ModeNonInteractive, detector.ResolveMode(detector.ModeNonInteractive, false))
}

func TestInteractive_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.False(t, detector.Interactive(false))
	assert.False(t, detector.Interactive(true))
}
