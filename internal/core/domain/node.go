package domain

import "path/filepath"

// BinaryNode is a binary artifact identified by its canonical path.
type BinaryNode struct {
	// Path is the absolute, symlink-free path of the file. It is the node identity.
	Path string
	// Name is the base name other binaries use to declare the file as a dependency.
	Name string
}

// NewBinaryNode creates a node for an already canonicalized path.
func NewBinaryNode(canonicalPath string) BinaryNode {
	return BinaryNode{
		Path: canonicalPath,
		Name: filepath.Base(canonicalPath),
	}
}
