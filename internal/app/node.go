package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/romdeps/internal/adapters/approvals" //nolint:depguard // Wired in app layer
	"go.trai.ch/romdeps/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/romdeps/internal/adapters/decider"   //nolint:depguard // Wired in app layer
	"go.trai.ch/romdeps/internal/adapters/elf"       //nolint:depguard // Wired in app layer
	"go.trai.ch/romdeps/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/romdeps/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/romdeps/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"go.trai.ch/romdeps/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/romdeps/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			elf.NodeID,
			fs.FinderNodeID,
			fs.CorpusWalkerNodeID,
			fs.CopierNodeID,
			approvals.NodeID,
			decider.NodeID,
			report.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	readers, err := graft.Dep[ports.MetadataReaderFactory](ctx)
	if err != nil {
		return nil, err
	}
	finder, err := graft.Dep[ports.FileFinder](ctx)
	if err != nil {
		return nil, err
	}
	corpus, err := graft.Dep[ports.CorpusWalker](ctx)
	if err != nil {
		return nil, err
	}
	copier, err := graft.Dep[ports.ArtifactCopier](ctx)
	if err != nil {
		return nil, err
	}
	stores, err := graft.Dep[ports.ApprovalStoreOpener](ctx)
	if err != nil {
		return nil, err
	}
	deciders, err := graft.Dep[ports.DecisionProviderFactory](ctx)
	if err != nil {
		return nil, err
	}
	projector, err := graft.Dep[ports.Projector](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, readers, finder, corpus, copier, stores, deciders, projector, tracer), nil
}
