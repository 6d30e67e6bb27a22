package domain

import (
	"strings"
	"unicode"
)

// Decision is the approval state of a library name.
type Decision int

const (
	// DecisionUndecided means no decision has been persisted yet.
	DecisionUndecided Decision = iota
	// DecisionApproved means the library is copied and expanded.
	DecisionApproved
	// DecisionRejected means the library is neither copied nor expanded.
	DecisionRejected
)

// String returns the lowercase name of the decision.
func (d Decision) String() string {
	switch d {
	case DecisionApproved:
		return "approved"
	case DecisionRejected:
		return "rejected"
	default:
		return "undecided"
	}
}

// Final reports whether the decision is terminal.
func (d Decision) Final() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// Policy is the explicit decision default used when nobody can be asked.
type Policy string

const (
	// PolicyDefer leaves pending libraries undecided and unexpanded.
	PolicyDefer Policy = "defer"
	// PolicyApprove approves every pending library.
	PolicyApprove Policy = "approve"
	// PolicyReject rejects every pending library.
	PolicyReject Policy = "reject"
)

// ParsePolicy validates a policy name. The empty string selects PolicyDefer.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyDefer:
		return PolicyDefer, nil
	case PolicyApprove, PolicyReject:
		return Policy(s), nil
	default:
		return "", ErrUnknownPolicy
	}
}

// ValidLibraryName reports whether name can be stored as a single line of a
// decision file.
func ValidLibraryName(name string) bool {
	if name == "" || strings.HasPrefix(name, "#") {
		return false
	}
	return !strings.ContainsFunc(name, func(r rune) bool {
		return r == '/' || r == 0 || unicode.IsSpace(r) || unicode.IsControl(r)
	})
}
