package app

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/ontoforge/ontoforge/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"github.com/ontoforge/ontoforge/internal/adapters/fetch"   //nolint:depguard // Wired in app layer
	"github.com/ontoforge/ontoforge/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"github.com/ontoforge/ontoforge/internal/adapters/owl"     //nolint:depguard // Wired in app layer
	"github.com/ontoforge/ontoforge/internal/adapters/project" //nolint:depguard // Wired in app layer
	"github.com/ontoforge/ontoforge/internal/adapters/table"   //nolint:depguard // Wired in app layer
	"github.com/ontoforge/ontoforge/internal/core/ports"
	"github.com/ontoforge/ontoforge/internal/engine/pipeline"
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
			logger.NodeID,
			config.NodeID,
			table.NodeID,
			fetch.NodeID,
			owl.LoaderNodeID,
			owl.RegistryNodeID,
			owl.FinderNodeID,
			project.NodeID,
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
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[config.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	tables, err := graft.Dep[ports.TableOpener](ctx)
	if err != nil {
		return nil, err
	}
	fetcher, err := graft.Dep[ports.Fetcher](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[*owl.Loader](ctx)
	if err != nil {
		return nil, err
	}
	registry, err := graft.Dep[*owl.Registry](ctx)
	if err != nil {
		return nil, err
	}
	finder, err := graft.Dep[*owl.Finder](ctx)
	if err != nil {
		return nil, err
	}
	scaffolder, err := graft.Dep[*project.Scaffolder](ctx)
	if err != nil {
		return nil, err
	}

	deps := pipeline.Deps{
		Logger:     log,
		Tables:     tables,
		Ontologies: loader,
		Fetcher:    fetcher,
		Mapper:     registry,
		Finder:     finder,
		Scaffolder: scaffolder,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
	}
	return New(deps, resolver), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{App: application, Logger: log}, nil
}
