package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/ui/output"
	"go.trai.ch/romdeps/internal/ui/style"
)

type printer struct {
	w       io.Writer
	b       strings.Builder
	heading lipgloss.Style
	ok      lipgloss.Style
	bad     lipgloss.Style
	warn    lipgloss.Style
	dim     lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())
	return &printer{
		w:       w,
		heading: r.NewStyle().Foreground(style.Iris).Bold(true),
		ok:      r.NewStyle().Foreground(style.Green),
		bad:     r.NewStyle().Foreground(style.Red),
		warn:    r.NewStyle().Foreground(style.Yellow),
		dim:     r.NewStyle().Foreground(style.Slate),
	}
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(&p.b, format+"\n", args...)
}

func (p *printer) flush() error {
	_, err := io.WriteString(p.w, p.b.String())
	return err
}

func rel(root, path string) string {
	r, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(r, "..") {
		return path
	}
	return r
}

func writeSummary(w io.Writer, searchRoot, outputRoot string, res *domain.WalkResult) error {
	p := newPrinter(w)

	p.line("%s resolved %d root(s) in %d pass(es)", p.ok.Render(style.Check), len(res.Roots), res.Passes)
	p.line("  %d libraries, %d edges, %d files copied to %s",
		len(res.Instances), res.Edges.Len(), len(res.Copied), outputRoot)

	if n := res.Missing.Len(); n > 0 {
		p.line("%s %d missing: %s", p.warn.Render(style.Warning), n, strings.Join(res.Missing.Names(), ", "))
	}
	if n := len(res.Rejected); n > 0 {
		p.line("%s %d rejected declarations skipped", p.dim.Render(style.Circle), n)
	}
	if n := len(res.Pending); n > 0 {
		p.line("%s %d undecided: %s", p.warn.Render(style.Warning), n, strings.Join(res.Pending, ", "))
	}
	for _, f := range res.CopyFailures {
		p.line("%s copy failed: %s: %v", p.bad.Render(style.Cross), rel(searchRoot, f.Path), f.Err)
	}
	if n := len(res.Unreadable); n > 0 {
		p.line("%s %d files without dynamic metadata", p.dim.Render(style.Circle), n)
	}
	return p.flush()
}

func writeReferences(w io.Writer, searchRoot string, idx *domain.ReferenceIndex, libraries []string) error {
	p := newPrinter(w)
	for _, lib := range libraries {
		refs := idx.ReferencesOf(lib)
		p.line("%s %s", p.heading.Render(lib), p.dim.Render(fmt.Sprintf("(%d)", len(refs))))
		for _, ref := range refs {
			p.line("  %s", rel(searchRoot, ref))
		}
	}
	return p.flush()
}

type resolution struct {
	soname    string
	instances []string
}

func writeInspection(w io.Writer, searchRoot, path string, md domain.Metadata, resolutions []resolution) error {
	p := newPrinter(w)

	p.line("%s", p.heading.Render(rel(searchRoot, path)))
	if md.Soname != "" {
		p.line("  soname:  %s", md.Soname)
	}
	class := "ELF32"
	if md.Class64 {
		class = "ELF64"
	}
	p.line("  class:   %s", class)
	if len(md.Runpath) > 0 {
		p.line("  runpath: %s", strings.Join(md.Runpath, ":"))
	}

	for _, r := range resolutions {
		if len(r.instances) == 0 {
			p.line("  %s %s %s not found", p.bad.Render(style.Cross), r.soname, style.Arrow)
			continue
		}
		for _, inst := range r.instances {
			p.line("  %s %s %s %s", p.ok.Render(style.Check), r.soname, style.Arrow, rel(searchRoot, inst))
		}
	}
	return p.flush()
}

func writeState(w io.Writer, approved, rejected []string) error {
	p := newPrinter(w)
	p.line("%s", p.heading.Render(fmt.Sprintf("approved (%d)", len(approved))))
	for _, name := range approved {
		p.line("  %s %s", p.ok.Render(style.Check), name)
	}
	p.line("%s", p.heading.Render(fmt.Sprintf("rejected (%d)", len(rejected))))
	for _, name := range rejected {
		p.line("  %s %s", p.bad.Render(style.Cross), name)
	}
	return p.flush()
}
