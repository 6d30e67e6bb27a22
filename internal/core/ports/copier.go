package ports

//go:generate mockgen -source=copier.go -destination=mocks/mock_copier.go -package=mocks

// ArtifactCopier mirrors files from the search root into an output tree.
type ArtifactCopier interface {
	// Copy places src at destRoot/<path of src relative to searchRoot> and
	// returns the destination path.
	Copy(src, searchRoot, destRoot string) (string, error)

	// Remove deletes a previously copied destination.
	Remove(dest string) error
}
