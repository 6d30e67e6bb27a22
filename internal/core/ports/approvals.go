package ports

import "go.trai.ch/romdeps/internal/core/domain"

//go:generate mockgen -source=approvals.go -destination=mocks/mock_approvals.go -package=mocks

// ApprovalStore is the persisted approved/rejected decision store of an output directory.
type ApprovalStore interface {
	// Get returns the persisted decision for a library name.
	Get(name string) domain.Decision

	// Set persists a terminal decision before returning. Changing an existing
	// decision fails with domain.ErrDecisionFinal.
	Set(name string, d domain.Decision) error

	// Approved returns the approved library names, sorted.
	Approved() []string

	// Rejected returns the rejected library names, sorted.
	Rejected() []string
}

// ApprovalStoreOpener loads the ApprovalStore of an output directory.
type ApprovalStoreOpener interface {
	Open(outputRoot string) (ApprovalStore, error)
}
