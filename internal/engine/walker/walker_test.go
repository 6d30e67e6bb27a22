package walker_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/romdeps/internal/adapters/approvals"
	"go.trai.ch/romdeps/internal/adapters/decider"
	"go.trai.ch/romdeps/internal/adapters/elf"
	"go.trai.ch/romdeps/internal/adapters/elf/elftest"
	"go.trai.ch/romdeps/internal/adapters/fs"
	"go.trai.ch/romdeps/internal/adapters/telemetry"
	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
	"go.trai.ch/romdeps/internal/core/ports/mocks"
	"go.trai.ch/romdeps/internal/engine/gate"
	"go.trai.ch/romdeps/internal/engine/resolver"
	"go.trai.ch/romdeps/internal/engine/walker"
	"go.uber.org/mock/gomock"
)

// countingReader counts the reads issued by the walker itself.
type countingReader struct {
	next  ports.MetadataReader
	mu    sync.Mutex
	reads map[string]int
}

func (c *countingReader) Read(ctx context.Context, path string) (domain.Metadata, error) {
	c.mu.Lock()
	c.reads[path]++
	c.mu.Unlock()
	return c.next.Read(ctx, path)
}

// failingCopier fails for one source path.
type failingCopier struct {
	*fs.Copier
	fail string
}

func (f failingCopier) Copy(src, searchRoot, destRoot string) (string, error) {
	if src == f.fail {
		return "", errors.New("disk full")
	}
	return f.Copier.Copy(src, searchRoot, destRoot)
}

// flakyCopier copies its fail path once and fails every later copy of it.
type flakyCopier struct {
	*fs.Copier
	fail   string
	copied bool
}

func (f *flakyCopier) Copy(src, searchRoot, destRoot string) (string, error) {
	if src == f.fail {
		if f.copied {
			return "", errors.New("disk full")
		}
		f.copied = true
	}
	return f.Copier.Copy(src, searchRoot, destRoot)
}

type harness struct {
	t      *testing.T
	root   string
	out    string
	store  *approvals.Store
	reader *countingReader
	copier ports.ArtifactCopier
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	out := filepath.Join(t.TempDir(), "out")

	store, err := approvals.Open(out)
	require.NoError(t, err)

	return &harness{
		t:      t,
		root:   root,
		out:    out,
		store:  store,
		reader: &countingReader{next: elf.NewNativeReader(), reads: make(map[string]int)},
		copier: fs.NewCopier(fs.NewHasher()),
	}
}

func (h *harness) path(rel string) string {
	return filepath.Join(h.root, rel)
}

func (h *harness) outPath(rel string) string {
	return filepath.Join(h.out, rel)
}

func (h *harness) write(rel string, needed ...string) string {
	p := h.path(rel)
	elftest.Write(h.t, p, elftest.Fixture{Needed: needed})
	return p
}

func (h *harness) writeRaw(rel string, data []byte) string {
	p := h.path(rel)
	require.NoError(h.t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(h.t, os.WriteFile(p, data, 0o600))
	return p
}

func (h *harness) approve(names ...string) {
	for _, n := range names {
		require.NoError(h.t, h.store.Set(n, domain.DecisionApproved))
	}
}

func (h *harness) reject(names ...string) {
	for _, n := range names {
		require.NoError(h.t, h.store.Set(n, domain.DecisionRejected))
	}
}

func (h *harness) walker(provider ports.DecisionProvider) *walker.Walker {
	ctrl := gomock.NewController(h.t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	finder := fs.NewFinder(fs.NewWalker())
	return walker.New(walker.Deps{
		Reader:   h.reader,
		Resolver: resolver.New(elf.NewNativeReader(), finder),
		Finder:   finder,
		Copier:   h.copier,
		Gate:     gate.New(h.store),
		Decider:  provider,
		Tracer:   telemetry.NoOpTracer{},
		Logger:   logger,
	})
}

func (h *harness) layout() walker.Layout {
	return walker.Layout{SearchRoot: h.root, OutputRoot: h.out}
}

func policy(t *testing.T, p domain.Policy) ports.DecisionProvider {
	t.Helper()
	provider, err := decider.NewPolicy(p)
	require.NoError(t, err)
	return provider
}

func TestWalk_CycleTerminatesAndKeepsBackEdge(t *testing.T) {
	h := newHarness(t)
	a := h.write("system/lib64/libA.so", "libB.so")
	b := h.write("system/lib64/libB.so", "libC.so")
	c := h.write("system/lib64/libC.so", "libA.so")
	h.approve("libA.so", "libB.so", "libC.so")

	res, err := h.walker(policy(t, domain.PolicyDefer)).Walk(context.Background(), a, h.layout())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Passes)
	assert.Equal(t, []string{a, b, c}, res.Visited)
	assert.Equal(t, []domain.Edge{{From: a, To: b}, {From: b, To: c}, {From: c, To: a}}, res.Edges.Sorted())
	for _, p := range []string{a, b, c} {
		assert.Equal(t, 1, h.reader.reads[p], "read %s once", p)
	}
	assert.Empty(t, res.Pending)
}

func TestWalk_CycleConvergesThroughDecisionRounds(t *testing.T) {
	h := newHarness(t)
	a := h.write("system/lib64/libA.so", "libB.so")
	b := h.write("system/lib64/libB.so", "libC.so")
	c := h.write("system/lib64/libC.so", "libA.so")

	res, err := h.walker(policy(t, domain.PolicyApprove)).Walk(context.Background(), a, h.layout())
	require.NoError(t, err)

	// libB, libC and finally libA itself surface one round at a time.
	assert.Equal(t, 4, res.Passes)
	assert.Equal(t, []string{a, b, c}, res.Visited)
	assert.Equal(t, 3, res.Edges.Len())
	assert.True(t, res.Edges.Contains(domain.Edge{From: c, To: a}))
	assert.Equal(t, []string{"libA.so", "libB.so", "libC.so"}, h.store.Approved())
}

func TestWalk_Idempotent(t *testing.T) {
	h := newHarness(t)
	app := h.write("system/bin/app", "liba.so", "libgone.so")
	h.write("system/lib64/liba.so", "libb.so")
	h.write("system/lib64/libb.so")
	h.write("vendor/lib64/libb.so")

	first, err := h.walker(policy(t, domain.PolicyApprove)).Walk(context.Background(), app, h.layout())
	require.NoError(t, err)

	second, err := h.walker(policy(t, domain.PolicyApprove)).Walk(context.Background(), app, h.layout())
	require.NoError(t, err)

	assert.Equal(t, first.Edges.Sorted(), second.Edges.Sorted())
	assert.Equal(t, first.Copied, second.Copied)
	assert.Equal(t, first.Missing.Names(), second.Missing.Names())
	assert.Equal(t, first.Missing.ReferencedBy("libgone.so"), second.Missing.ReferencedBy("libgone.so"))
	assert.Equal(t, 1, second.Passes, "decisions persisted by the first walk")
}

func TestWalk_RejectedIsNeverCopiedOrExpanded(t *testing.T) {
	h := newHarness(t)
	app := h.write("system/bin/app", "libbad.so", "liba.so")
	liba := h.write("system/lib64/liba.so", "libbad.so")
	h.write("vendor/lib64/libbad.so", "libdeep.so")
	h.write("vendor/lib64/libdeep.so")
	h.reject("libbad.so")

	res, err := h.walker(policy(t, domain.PolicyApprove)).Walk(context.Background(), app, h.layout())
	require.NoError(t, err)

	assert.Equal(t, []domain.SkippedEdge{
		{From: app, Soname: "libbad.so"},
		{From: liba, Soname: "libbad.so"},
	}, res.Rejected)
	assert.NotContains(t, res.Instances, "libbad.so")
	assert.NotContains(t, res.Instances, "libdeep.so")
	assert.NotContains(t, res.Copied, h.path("vendor/lib64/libbad.so"))
	assert.NoFileExists(t, h.outPath("vendor/lib64/libbad.so"))
	assert.Equal(t, domain.DecisionRejected, h.store.Get("libbad.so"))
}

func TestWalk_RejectionBetweenPassesRemovesCopy(t *testing.T) {
	h := newHarness(t)
	app := h.write("system/bin/app", "liba.so", "libb.so")
	h.write("system/lib64/liba.so")
	h.write("system/lib64/libb.so", "libc.so")
	h.write("system/lib64/libc.so")

	rules, err := decider.NewRules(nil, []string{"libb.so"})
	require.NoError(t, err)
	provider := decider.NewChain(rules, policy(t, domain.PolicyApprove))

	res, err := h.walker(provider).Walk(context.Background(), app, h.layout())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Passes)
	assert.Equal(t, []domain.SkippedEdge{{From: app, Soname: "libb.so"}}, res.Rejected)
	assert.FileExists(t, h.outPath("system/lib64/liba.so"))
	assert.NoFileExists(t, h.outPath("system/lib64/libb.so"))
	assert.NotContains(t, res.Instances, "libc.so")
}

func TestWalk_FailedRecopyKeepsEarlierCopy(t *testing.T) {
	h := newHarness(t)
	app := h.write("system/bin/app", "liba.so")
	liba := h.write("system/lib64/liba.so")
	h.copier = &flakyCopier{Copier: fs.NewCopier(fs.NewHasher()), fail: liba}

	res, err := h.walker(policy(t, domain.PolicyApprove)).Walk(context.Background(), app, h.layout())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Passes)
	require.Len(t, res.CopyFailures, 1)
	assert.Equal(t, liba, res.CopyFailures[0].Path)
	assert.FileExists(t, h.outPath("system/lib64/liba.so"))
}

func TestWalk_SessionApprovalsAreReported(t *testing.T) {
	h := newHarness(t)
	app := h.write("system/bin/app", "lib odd.so", "liba.so")
	h.write("system/lib64/lib odd.so")
	h.write("system/lib64/liba.so")

	res, err := h.walker(policy(t, domain.PolicyApprove)).Walk(context.Background(), app, h.layout())
	require.NoError(t, err)

	assert.Equal(t, []string{"lib odd.so"}, res.SessionApproved)
	assert.Equal(t, []string{"liba.so"}, h.store.Approved())
}

func TestWalk_MultiInstanceCopiesAndEdgesEveryCopy(t *testing.T) {
	h := newHarness(t)
	app := h.write("system/bin/camera", "libcamera.so")
	sys := h.write("system/lib64/libcamera.so")
	vnd := h.write("vendor/lib64/libcamera.so", "libvendor.so")
	h.write("vendor/lib64/libvendor.so")
	h.approve("libcamera.so", "libvendor.so")

	res, err := h.walker(policy(t, domain.PolicyDefer)).Walk(context.Background(), app, h.layout())
	require.NoError(t, err)

	assert.Equal(t, []string{sys, vnd}, res.Instances["libcamera.so"])
	assert.True(t, res.Edges.Contains(domain.Edge{From: app, To: sys}))
	assert.True(t, res.Edges.Contains(domain.Edge{From: app, To: vnd}))
	assert.FileExists(t, h.outPath("system/lib64/libcamera.so"))
	assert.FileExists(t, h.outPath("vendor/lib64/libcamera.so"))
	assert.FileExists(t, h.outPath("vendor/lib64/libvendor.so"))
	assert.FileExists(t, h.outPath("system/bin/camera"), "the root is mirrored too")
}

func TestWalk_MissingAccumulatesReferrers(t *testing.T) {
	h := newHarness(t)
	app := h.write("system/bin/app", "libb.so", "libc.so", "libgone.so")
	b := h.write("system/lib64/libb.so", "libgone.so")
	c := h.write("system/lib64/libc.so", "libgone.so")
	h.approve("libb.so", "libc.so")

	res, err := h.walker(policy(t, domain.PolicyDefer)).Walk(context.Background(), app, h.layout())
	require.NoError(t, err)

	assert.Equal(t, []string{"libgone.so"}, res.Missing.Names())
	assert.Equal(t, []string{app, b, c}, res.Missing.ReferencedBy("libgone.so"))
	assert.Empty(t, res.Pending, "missing libraries are never pending")
}

func TestWalk_DiamondVisitsSharedNodeOnce(t *testing.T) {
	h := newHarness(t)
	app := h.write("system/bin/app", "liba.so", "libb.so")
	h.write("system/lib64/liba.so", "libc.so")
	h.write("system/lib64/libb.so", "libc.so")
	c := h.write("system/lib64/libc.so")
	h.approve("liba.so", "libb.so", "libc.so")

	res, err := h.walker(policy(t, domain.PolicyDefer)).Walk(context.Background(), app, h.layout())
	require.NoError(t, err)

	assert.Equal(t, 4, res.Edges.Len())
	assert.Equal(t, 1, h.reader.reads[c])
	assert.Len(t, res.Copied, 4)
}

func TestWalk_DeferLeavesPendingUnexpanded(t *testing.T) {
	h := newHarness(t)
	app := h.write("system/bin/app", "liba.so")
	h.write("system/lib64/liba.so", "libdeep.so")
	h.write("system/lib64/libdeep.so")

	res, err := h.walker(policy(t, domain.PolicyDefer)).Walk(context.Background(), app, h.layout())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Passes)
	assert.Equal(t, []string{"liba.so"}, res.Pending)
	assert.FileExists(t, h.outPath("system/lib64/liba.so"), "pending libraries are still captured")
	assert.NotContains(t, res.Instances, "libdeep.so")
	assert.Equal(t, domain.DecisionUndecided, h.store.Get("liba.so"))
}

func TestWalk_UnreadableIsALeaf(t *testing.T) {
	h := newHarness(t)
	app := h.write("system/bin/app", "libtext.so")
	text := h.writeRaw("system/lib64/libtext.so", []byte("INPUT(-lc)\n"))
	h.approve("libtext.so")

	res, err := h.walker(policy(t, domain.PolicyDefer)).Walk(context.Background(), app, h.layout())
	require.NoError(t, err)

	assert.Equal(t, []string{text}, res.Unreadable)
	assert.FileExists(t, h.outPath("system/lib64/libtext.so"))
}

func TestWalk_CopyFailureDoesNotAbort(t *testing.T) {
	h := newHarness(t)
	app := h.write("system/bin/app", "liba.so", "libb.so")
	liba := h.write("system/lib64/liba.so")
	h.write("system/lib64/libb.so")
	h.approve("liba.so", "libb.so")
	h.copier = failingCopier{Copier: fs.NewCopier(fs.NewHasher()), fail: liba}

	res, err := h.walker(policy(t, domain.PolicyDefer)).Walk(context.Background(), app, h.layout())
	require.NoError(t, err)

	require.Len(t, res.CopyFailures, 1)
	assert.Equal(t, liba, res.CopyFailures[0].Path)
	assert.FileExists(t, h.outPath("system/lib64/libb.so"))
	assert.Contains(t, res.Visited, liba, "a failed copy is still expanded")
}

func TestWalk_RootNotFound(t *testing.T) {
	h := newHarness(t)

	_, err := h.walker(policy(t, domain.PolicyDefer)).Walk(context.Background(), h.path("system/bin/nope"), h.layout())
	require.ErrorContains(t, err, domain.ErrRootBinaryNotFound.Error())
}

func TestWalk_DecisionAborted(t *testing.T) {
	h := newHarness(t)
	app := h.write("system/bin/app", "liba.so")
	h.write("system/lib64/liba.so")

	ctrl := gomock.NewController(t)
	provider := mocks.NewMockDecisionProvider(ctrl)
	provider.EXPECT().Decide(gomock.Any(), []string{"liba.so"}).Return(nil, domain.ErrDecisionAborted)

	_, err := h.walker(provider).Walk(context.Background(), app, h.layout())
	require.ErrorIs(t, err, domain.ErrDecisionAborted)
	require.ErrorContains(t, err, domain.ErrDecisionFailed.Error())
	assert.Equal(t, domain.DecisionUndecided, h.store.Get("liba.so"))
}

func TestWalk_Cancelled(t *testing.T) {
	h := newHarness(t)
	app := h.write("system/bin/app", "liba.so")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.walker(policy(t, domain.PolicyDefer)).Walk(ctx, app, h.layout())
	require.ErrorIs(t, err, context.Canceled)
}

func TestWalkAll_MergesRoots(t *testing.T) {
	h := newHarness(t)
	app := h.write("system/bin/app", "libshared.so", "libgone.so")
	tool := h.write("vendor/bin/tool", "libshared.so", "libgone.so")
	shared := h.write("system/lib64/libshared.so")

	res, err := h.walker(policy(t, domain.PolicyApprove)).WalkAll(context.Background(), []string{app, tool}, h.layout())
	require.NoError(t, err)

	assert.Equal(t, []string{app, tool}, res.Roots)
	assert.True(t, res.Edges.Contains(domain.Edge{From: app, To: shared}))
	assert.True(t, res.Edges.Contains(domain.Edge{From: tool, To: shared}))
	assert.Equal(t, []string{app, tool}, res.Missing.ReferencedBy("libgone.so"))
	assert.Equal(t, []string{"libshared.so"}, h.store.Approved())
}

func TestWalkAll_NoRoots(t *testing.T) {
	h := newHarness(t)
	_, err := h.walker(policy(t, domain.PolicyDefer)).WalkAll(context.Background(), nil, h.layout())
	require.ErrorIs(t, err, domain.ErrNoBinariesSpecified)
}
