package ports

import (
	"context"

	"go.trai.ch/romdeps/internal/core/domain"
)

//go:generate mockgen -source=decider.go -destination=mocks/mock_decider.go -package=mocks

// DecisionProvider decides pending library names.
type DecisionProvider interface {
	// Decide returns a decision for some or all of pending. Names that are
	// absent from the result, or mapped to domain.DecisionUndecided, stay pending.
	Decide(ctx context.Context, pending []string) (map[string]domain.Decision, error)
}

// DecisionProviderFactory builds the DecisionProvider for a run.
type DecisionProviderFactory interface {
	New(cfg domain.DecisionConfig, interactive bool) (DecisionProvider, error)
}
