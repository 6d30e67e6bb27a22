// Package report renders resolution results into the output directory.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/romdeps/internal/core/domain"
)

// WriteGraph writes the dependency graph in DOT form. Paths are relative to
// searchRoot. Rejected declarations are dashed and missing ones dotted.
func WriteGraph(w io.Writer, searchRoot string, r *domain.WalkResult) error {
	var b strings.Builder
	b.WriteString("digraph dependencies {\n")

	for _, e := range r.Edges.Sorted() {
		fmt.Fprintf(&b, "  %q -> %q;\n", relative(searchRoot, e.From), relative(searchRoot, e.To))
	}
	for _, s := range domain.SortSkipped(r.Rejected) {
		fmt.Fprintf(&b, "  %q -> %q [style=dashed];\n", relative(searchRoot, s.From), s.Soname)
	}
	for _, name := range r.Missing.Names() {
		for _, from := range r.Missing.ReferencedBy(name) {
			fmt.Fprintf(&b, "  %q -> %q [style=dotted];\n", relative(searchRoot, from), name)
		}
	}

	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteMissing writes one missing soname per line.
func WriteMissing(w io.Writer, r *domain.WalkResult) error {
	var b strings.Builder
	for _, name := range r.Missing.Names() {
		b.WriteString(name + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// DigestFunc returns the content digest of a file.
type DigestFunc func(path string) (string, error)

// WriteReferences writes, for every approved library, its physical instances
// with their digests and the binaries that declare it.
func WriteReferences(w io.Writer, p domain.Projection, digest DigestFunc) error {
	var b strings.Builder

	approved := slices.Clone(p.Approved)
	slices.Sort(approved)

	for i, lib := range slices.Compact(approved) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(lib + "\n")

		instances := slices.Clone(p.Result.Instances[lib])
		slices.Sort(instances)
		for _, inst := range instances {
			sum, err := digest(inst)
			if err != nil {
				sum = "-"
			}
			fmt.Fprintf(&b, "  instance %s %s\n", relative(p.SearchRoot, inst), sum)
		}

		if p.Index == nil {
			continue
		}
		for _, ref := range p.Index.ReferencesOf(lib) {
			fmt.Fprintf(&b, "  referenced-by %s\n", relative(p.SearchRoot, ref))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
