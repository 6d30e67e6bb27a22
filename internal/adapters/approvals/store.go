// Package approvals persists library approval decisions next to the output tree.
package approvals

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ApprovalStore = (*Store)(nil)

// Store implements ports.ApprovalStore with two line-delimited files.
// Every Set rewrites the affected file through a temp file and rename, so a
// crash leaves either the previous or the new list on disk.
type Store struct {
	mu           sync.RWMutex
	approvedPath string
	rejectedPath string
	decisions    map[string]domain.Decision
}

// Open loads the decision files from outputRoot, creating the directory if
// needed. Missing files are empty lists. A name listed in both files is
// treated as rejected.
func Open(outputRoot string) (*Store, error) {
	if err := os.MkdirAll(outputRoot, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputRootUnavailable.Error()), "path", outputRoot)
	}

	approvedPath, rejectedPath := domain.StatePaths(outputRoot)
	s := &Store{
		approvedPath: approvedPath,
		rejectedPath: rejectedPath,
		decisions:    make(map[string]domain.Decision),
	}

	approved, err := readNames(approvedPath)
	if err != nil {
		return nil, err
	}
	rejected, err := readNames(rejectedPath)
	if err != nil {
		return nil, err
	}

	for _, name := range approved {
		s.decisions[name] = domain.DecisionApproved
	}
	for _, name := range rejected {
		s.decisions[name] = domain.DecisionRejected
	}
	return s, nil
}

// Get returns the persisted decision for name.
func (s *Store) Get(name string) domain.Decision {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.decisions[name]
}

// Set persists a terminal decision for name. Repeating the current decision
// is a no-op; changing it fails.
func (s *Store) Set(name string, d domain.Decision) error {
	if !d.Final() {
		return zerr.With(domain.ErrInvalidDecision, "library", name)
	}
	if !domain.ValidLibraryName(name) {
		return zerr.With(domain.ErrInvalidLibraryName, "library", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.decisions[name]
	if current == d {
		return nil
	}
	if current.Final() {
		err := zerr.With(domain.ErrDecisionFinal, "library", name)
		return zerr.With(err, "decision", current.String())
	}

	s.decisions[name] = d
	path := s.approvedPath
	if d == domain.DecisionRejected {
		path = s.rejectedPath
	}
	if err := writeNames(path, s.namesLocked(d)); err != nil {
		delete(s.decisions, name)
		return err
	}
	return nil
}

// Approved returns the approved names, sorted.
func (s *Store) Approved() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.namesLocked(domain.DecisionApproved)
}

// Rejected returns the rejected names, sorted.
func (s *Store) Rejected() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.namesLocked(domain.DecisionRejected)
}

func (s *Store) namesLocked(d domain.Decision) []string {
	var out []string
	for name, decision := range s.decisions {
		if decision == d {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// ParseNames extracts library names from a decision file. Blank lines,
// comments and malformed lines are skipped.
func ParseNames(data []byte) []string {
	var out []string
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if !domain.ValidLibraryName(name) {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func readNames(path string) ([]string, error) {
	//nolint:gosec // path is derived from the output root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", path)
	}
	return ParseNames(data), nil
}

func writeNames(path string, names []string) error {
	var buf bytes.Buffer
	for _, name := range names {
		buf.WriteString(name)
		buf.WriteByte('\n')
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	return nil
}

// Opener implements ports.ApprovalStoreOpener.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open loads the store of outputRoot.
func (o *Opener) Open(outputRoot string) (ports.ApprovalStore, error) {
	s, err := Open(outputRoot)
	if err != nil {
		return nil, err
	}
	return s, nil
}
