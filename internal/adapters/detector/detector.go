// Package detector decides whether an operator can be asked questions.
package detector

import (
	"os"

	"golang.org/x/term"
)

// Mode is the interaction mode for pending decisions.
type Mode int

const (
	// ModeAuto detects the mode from the environment.
	ModeAuto Mode = iota
	// ModeInteractive shows the checklist.
	ModeInteractive
	// ModeNonInteractive applies the configured policy.
	ModeNonInteractive
)

// Environment reports the facts detection depends on.
type Environment struct {
	StdinTTY  bool
	StdoutTTY bool
	CI        string
}

// CurrentEnvironment inspects the running process.
func CurrentEnvironment() Environment {
	return Environment{
		StdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		StdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
		CI:        os.Getenv("CI"),
	}
}

// Detect returns ModeInteractive only when both stdin and stdout are
// terminals and CI is not set.
func Detect(env Environment) Mode {
	isCI := env.CI == "true" || env.CI == "1"
	if !env.StdinTTY || !env.StdoutTTY || isCI {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// DetectEnvironment detects the mode of the running process.
func DetectEnvironment() Mode {
	return Detect(CurrentEnvironment())
}

// ResolveMode applies the --non-interactive override to auto-detection.
func ResolveMode(autoDetected Mode, nonInteractive bool) Mode {
	if nonInteractive {
		return ModeNonInteractive
	}
	if autoDetected == ModeAuto {
		return DetectEnvironment()
	}
	return autoDetected
}

// Interactive reports whether the checklist may be shown.
func Interactive(nonInteractive bool) bool {
	return ResolveMode(DetectEnvironment(), nonInteractive) == ModeInteractive
}
