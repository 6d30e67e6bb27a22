package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Projector = (*Projector)(nil)

// Digester computes content digests.
type Digester interface {
	Digest(path string) (string, error)
}

// Projector writes the graph, missing list and reference report, and
// optionally mirrors referencing binaries into the references subtree.
type Projector struct {
	copier   ports.ArtifactCopier
	digester Digester
	logger   ports.Logger
}

// NewProjector creates a Projector.
func NewProjector(copier ports.ArtifactCopier, digester Digester, logger ports.Logger) *Projector {
	return &Projector{copier: copier, digester: digester, logger: logger}
}

// Project renders p into p.OutputRoot.
func (pr *Projector) Project(ctx context.Context, p domain.Projection) error {
	if err := os.MkdirAll(p.OutputRoot, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputRootUnavailable.Error()), "path", p.OutputRoot)
	}

	var graph, missing, refs bytes.Buffer
	if err := WriteGraph(&graph, p.SearchRoot, p.Result); err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}
	if err := WriteMissing(&missing, p.Result); err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}
	if err := WriteReferences(&refs, p, pr.digester.Digest); err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}

	files := []struct {
		name string
		data []byte
	}{
		{domain.GraphFileName, graph.Bytes()},
		{domain.MissingFileName, missing.Bytes()},
		{domain.ReferencesFileName, refs.Bytes()},
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(p.OutputRoot, f.name), f.data); err != nil {
			return err
		}
	}

	if p.CopyReferences && p.Index != nil {
		return pr.copyReferences(ctx, p)
	}
	return nil
}

func (pr *Projector) copyReferences(ctx context.Context, p domain.Projection) error {
	dest := domain.ReferencesRoot(p.OutputRoot)
	seen := make(map[string]struct{})

	for _, lib := range p.Approved {
		for _, ref := range p.Index.ReferencesOf(lib) {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, ok := seen[ref]; ok {
				continue
			}
			seen[ref] = struct{}{}

			if _, err := pr.copier.Copy(ref, p.SearchRoot, dest); err != nil {
				pr.logger.Warn(fmt.Sprintf("failed to mirror referencing binary %s: %v", ref, err))
			}
		}
	}
	return nil
}

func writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	return nil
}
