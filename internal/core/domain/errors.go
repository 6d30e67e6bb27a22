package domain

import "go.trai.ch/zerr"

var (
	// ErrNotELF is returned when a file carries no readable ELF dynamic metadata.
	ErrNotELF = zerr.New("not an ELF file")

	// ErrMetadataReadFailed is returned when the metadata of a binary cannot be extracted.
	ErrMetadataReadFailed = zerr.New("failed to read binary metadata")

	// ErrMetadataToolFailed is returned when the external metadata tool exits abnormally.
	ErrMetadataToolFailed = zerr.New("metadata tool failed")

	// ErrUnknownMetadataTool is returned when the configured metadata tool is not supported.
	ErrUnknownMetadataTool = zerr.New("unknown metadata tool, expected 'native', 'readelf' or 'objdump'")

	// ErrSearchRootUnavailable is returned when the search root cannot be used.
	ErrSearchRootUnavailable = zerr.New("search root is not an accessible directory")

	// ErrOutputRootUnavailable is returned when the output root cannot be created or written.
	ErrOutputRootUnavailable = zerr.New("output root is not writable")

	// ErrRootBinaryNotFound is returned when a root binary does not exist.
	ErrRootBinaryNotFound = zerr.New("root binary not found")

	// ErrNoBinariesSpecified is returned when the resolve command gets no root binaries.
	ErrNoBinariesSpecified = zerr.New("no binaries specified")

	// ErrCanonicalizeFailed is returned when a path cannot be made absolute.
	ErrCanonicalizeFailed = zerr.New("failed to canonicalize path")

	// ErrCopyFailed is returned when an artifact cannot be mirrored into the output tree.
	ErrCopyFailed = zerr.New("failed to copy artifact")

	// ErrStateReadFailed is returned when an approval state file cannot be read.
	ErrStateReadFailed = zerr.New("failed to read approval state")

	// ErrStateWriteFailed is returned when an approval state file cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write approval state")

	// ErrDecisionFinal is returned when a persisted decision would be changed.
	ErrDecisionFinal = zerr.New("library decision is final")

	// ErrInvalidDecision is returned when a decision other than approved or rejected is persisted.
	ErrInvalidDecision = zerr.New("only approved or rejected decisions can be persisted")

	// ErrInvalidLibraryName is returned when a library name cannot be stored in the state files.
	ErrInvalidLibraryName = zerr.New("invalid library name")

	// ErrDecisionAborted is returned when the user aborts the decision prompt.
	ErrDecisionAborted = zerr.New("decision aborted")

	// ErrDecisionFailed is returned when the decision provider fails.
	ErrDecisionFailed = zerr.New("failed to obtain decisions")

	// ErrUnknownPolicy is returned when the non-interactive policy is not supported.
	ErrUnknownPolicy = zerr.New("unknown non-interactive policy, expected 'defer', 'approve' or 'reject'")

	// ErrInvalidPattern is returned when a decision rule pattern is malformed.
	ErrInvalidPattern = zerr.New("invalid library pattern")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrIndexFailed is returned when the reference sweep cannot complete.
	ErrIndexFailed = zerr.New("reference index sweep failed")

	// ErrReportWriteFailed is returned when a report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write report")

	// ErrResolutionFailed is returned when the dependency resolution of a root binary fails.
	ErrResolutionFailed = zerr.New("dependency resolution failed")
)
