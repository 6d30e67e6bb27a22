package domain

// Metadata is the dynamic linking information of a binary.
type Metadata struct {
	// Needed lists the DT_NEEDED sonames in declaration order.
	Needed []string
	// Runpath lists search hints, RUNPATH entries before RPATH entries.
	Runpath []string
	// Soname is the DT_SONAME of a shared object, if any.
	Soname string
	// Class64 is set for ELFCLASS64 files.
	Class64 bool
}
