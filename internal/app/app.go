// Package app implements the application layer for romdeps.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/romdeps/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/romdeps/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/romdeps/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
	"go.trai.ch/romdeps/internal/engine/gate"
	"go.trai.ch/romdeps/internal/engine/indexer"
	"go.trai.ch/romdeps/internal/engine/resolver"
	"go.trai.ch/romdeps/internal/engine/walker"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	readers      ports.MetadataReaderFactory
	finder       ports.FileFinder
	corpus       ports.CorpusWalker
	copier       ports.ArtifactCopier
	stores       ports.ApprovalStoreOpener
	deciders     ports.DecisionProviderFactory
	projector    ports.Projector
	tracer       ports.Tracer

	out         io.Writer
	getwd       func() (string, error)
	interactive func(nonInteractive bool) bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	readers ports.MetadataReaderFactory,
	finder ports.FileFinder,
	corpus ports.CorpusWalker,
	copier ports.ArtifactCopier,
	stores ports.ApprovalStoreOpener,
	deciders ports.DecisionProviderFactory,
	projector ports.Projector,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		readers:      readers,
		finder:       finder,
		corpus:       corpus,
		copier:       copier,
		stores:       stores,
		deciders:     deciders,
		projector:    projector,
		tracer:       tracer,
		out:          os.Stdout,
		getwd:        os.Getwd,
		interactive:  detector.Interactive,
	}
}

// WithOutput sets the writer command results are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithWorkingDir pins the directory relative paths are resolved against.
// This is primarily used for testing.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// WithInteractive overrides terminal detection.
func (a *App) WithInteractive(fn func(nonInteractive bool) bool) *App {
	a.interactive = fn
	return a
}

// logConfigurer is implemented by loggers whose verbosity and format can be
// changed after construction.
type logConfigurer interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// ConfigureLogging applies the global logging flags.
func (a *App) ConfigureLogging(verbose, jsonLog bool) {
	if lc, ok := a.logger.(logConfigurer); ok {
		lc.SetVerbose(verbose)
		lc.SetJSON(jsonLog)
	}
}

// CommonOptions are the flags shared by every command.
type CommonOptions struct {
	ConfigPath string
	SearchRoot string
	OutputRoot string
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	CommonOptions
	NonInteractive bool
	Policy         string
	Approve        []string
	Reject         []string
	CopyReferences bool
	NoIndex        bool
}

// IndexOptions configuration for the Index method.
type IndexOptions struct {
	CommonOptions
	IncludeAll  bool
	Parallelism int
}

// loadConfig loads the configuration and applies command line overrides.
func (a *App) loadConfig(opts CommonOptions) (domain.Config, string, error) {
	cwd, err := a.getwd()
	if err != nil {
		return domain.Config{}, "", zerr.Wrap(err, "failed to determine working directory")
	}

	cfg, err := a.configLoader.Load(cwd, opts.ConfigPath)
	if err != nil {
		return domain.Config{}, "", zerr.Wrap(err, "failed to load configuration")
	}

	if opts.SearchRoot != "" {
		cfg.SearchRoot = absolute(cwd, opts.SearchRoot)
	}
	if opts.OutputRoot != "" {
		cfg.OutputRoot = absolute(cwd, opts.OutputRoot)
	}
	return cfg, cwd, nil
}

func absolute(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// binaryPath locates a root binary argument. Relative paths name a file
// inside the image first and fall back to the working directory.
func binaryPath(cwd, searchRoot, arg string) string {
	if filepath.IsAbs(arg) {
		return filepath.Clean(arg)
	}
	inImage := filepath.Join(searchRoot, arg)
	if _, err := os.Lstat(inImage); err == nil {
		return inImage
	}
	return filepath.Join(cwd, arg)
}

// Resolve walks the dependencies of binaries, then projects the result and
// the reference report into the output root.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Resolve(ctx context.Context, binaries []string, opts ResolveOptions) error {
	if len(binaries) == 0 {
		return domain.ErrNoBinariesSpecified
	}

	// 1. Configuration
	cfg, cwd, err := a.loadConfig(opts.CommonOptions)
	if err != nil {
		return err
	}
	if opts.Policy != "" {
		cfg.Decisions.NonInteractive = domain.Policy(opts.Policy)
	}
	cfg.Decisions.Approve = append(cfg.Decisions.Approve, opts.Approve...)
	cfg.Decisions.Reject = append(cfg.Decisions.Reject, opts.Reject...)
	if opts.CopyReferences {
		cfg.References.Copy = true
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	searchRoot, err := fs.CanonicalRoot(cfg.SearchRoot)
	if err != nil {
		return err
	}

	// 2. Collaborators
	reader, err := a.readers.New(cfg.Metadata)
	if err != nil {
		return err
	}
	store, err := a.stores.Open(cfg.OutputRoot)
	if err != nil {
		return err
	}
	provider, err := a.deciders.New(cfg.Decisions, a.interactive(opts.NonInteractive))
	if err != nil {
		return err
	}

	w := walker.New(walker.Deps{
		Reader:   reader,
		Resolver: resolver.New(reader, a.finder),
		Finder:   a.finder,
		Copier:   a.copier,
		Gate:     gate.New(store),
		Decider:  provider,
		Tracer:   a.tracer,
		Logger:   a.logger,
	})

	roots := make([]string, 0, len(binaries))
	for _, b := range binaries {
		roots = append(roots, binaryPath(cwd, searchRoot, b))
	}

	// 3. Walk
	res, err := w.WalkAll(ctx, roots, walker.Layout{SearchRoot: searchRoot, OutputRoot: cfg.OutputRoot})
	if err != nil {
		return zerr.Wrap(err, domain.ErrResolutionFailed.Error())
	}

	// 4. Reference sweep
	var index *domain.ReferenceIndex
	if !opts.NoIndex {
		ix := a.newIndexer(reader)
		idx, err := ix.Build(ctx, searchRoot, indexer.OptionsFrom(cfg.Index))
		if err != nil {
			return err
		}
		index = idx.Index
	}

	// 5. Projection
	if err := a.projector.Project(ctx, domain.Projection{
		SearchRoot:     searchRoot,
		OutputRoot:     cfg.OutputRoot,
		Result:         res,
		Index:          index,
		Approved:       approvedNames(store.Approved(), res.SessionApproved),
		CopyReferences: cfg.References.Copy,
	}); err != nil {
		return err
	}

	return writeSummary(a.out, searchRoot, cfg.OutputRoot, res)
}

func (a *App) newIndexer(reader ports.MetadataReader) *indexer.Indexer {
	return indexer.New(indexer.Deps{
		Reader: reader,
		Walker: a.corpus,
		Finder: a.finder,
		Tracer: a.tracer,
		Logger: a.logger,
	})
}

// Index sweeps the search root and prints the binaries referencing each of
// libraries, or every indexed library when none is named.
func (a *App) Index(ctx context.Context, libraries []string, opts IndexOptions) error {
	cfg, _, err := a.loadConfig(opts.CommonOptions)
	if err != nil {
		return err
	}
	if opts.IncludeAll {
		cfg.Index.IncludeAll = true
	}
	if opts.Parallelism > 0 {
		cfg.Index.Parallelism = opts.Parallelism
	}

	searchRoot, err := fs.CanonicalRoot(cfg.SearchRoot)
	if err != nil {
		return err
	}
	reader, err := a.readers.New(cfg.Metadata)
	if err != nil {
		return err
	}

	res, err := a.newIndexer(reader).Build(ctx, searchRoot, indexer.OptionsFrom(cfg.Index))
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("indexed %d of %d candidate files (%d unreadable)",
		res.Indexed, res.Scanned, res.Dropped))

	if len(libraries) == 0 {
		libraries = res.Index.Libraries()
	}
	return writeReferences(a.out, searchRoot, res.Index, libraries)
}

// Inspect prints the dynamic metadata of binary and how each declared
// dependency resolves. It neither copies files nor touches approval state.
func (a *App) Inspect(ctx context.Context, binary string, opts CommonOptions) error {
	cfg, cwd, err := a.loadConfig(opts)
	if err != nil {
		return err
	}
	searchRoot, err := fs.CanonicalRoot(cfg.SearchRoot)
	if err != nil {
		return err
	}
	reader, err := a.readers.New(cfg.Metadata)
	if err != nil {
		return err
	}

	path, err := a.finder.Canonicalize(searchRoot, binaryPath(cwd, searchRoot, binary))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRootBinaryNotFound.Error()), "binary", binary)
	}
	md, err := reader.Read(ctx, path)
	if err != nil {
		return zerr.With(err, "binary", binary)
	}

	res := resolver.New(reader, a.finder)
	resolutions := make([]resolution, 0, len(md.Needed))
	for _, soname := range md.Needed {
		instances, err := res.Resolve(ctx, soname, path, searchRoot)
		if err != nil {
			return err
		}
		resolutions = append(resolutions, resolution{soname: soname, instances: instances})
	}

	return writeInspection(a.out, searchRoot, path, md, resolutions)
}

// State prints the persisted approval decisions of the output root without
// creating it.
func (a *App) State(_ context.Context, opts CommonOptions) error {
	cfg, _, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.OutputRoot); err != nil {
		a.logger.Warn("no approval state in " + cfg.OutputRoot)
		return writeState(a.out, nil, nil)
	}

	store, err := a.stores.Open(cfg.OutputRoot)
	if err != nil {
		return err
	}
	return writeState(a.out, store.Approved(), store.Rejected())
}

// approvedNames unions persisted approvals with those held for this run only.
func approvedNames(persisted, session []string) []string {
	out := append(slices.Clone(persisted), session...)
	slices.Sort(out)
	return slices.Compact(out)
}
