package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "romdeps.yaml"

	// ApprovedFileName lists approved library names, one per line.
	ApprovedFileName = "approved_libs.txt"

	// RejectedFileName lists rejected library names, one per line.
	RejectedFileName = "rejected_libs.txt"

	// GraphFileName is the dependency graph artifact.
	GraphFileName = "dependencies.dot"

	// MissingFileName lists unresolved sonames, one per line.
	MissingFileName = "missing_deps.txt"

	// ReferencesFileName is the per-library reference report.
	ReferencesFileName = "references.txt"

	// ReferencesDirName is the subtree holding reverse-dependency artifacts.
	ReferencesDirName = "_references"

	// ExternalDirName holds artifacts whose canonical path lies outside the search root.
	ExternalDirName = "_external"

	// DefaultOutputDir is used when neither config nor flags name an output root.
	DefaultOutputDir = "romdeps-out"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// StatePaths returns the approved and rejected state file paths inside outputRoot.
func StatePaths(outputRoot string) (approved, rejected string) {
	return filepath.Join(outputRoot, ApprovedFileName), filepath.Join(outputRoot, RejectedFileName)
}

// ReferencesRoot returns the subtree for reverse-dependency artifacts.
func ReferencesRoot(outputRoot string) string {
	return filepath.Join(outputRoot, ReferencesDirName)
}
