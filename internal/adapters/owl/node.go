package owl

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ontoforge/ontoforge/internal/adapters/logger"
)

// Node IDs for the OWL toolkit Graft nodes.
const (
	RunnerNodeID   graft.ID = "adapter.owl.runner"
	RegistryNodeID graft.ID = "adapter.owl.registry"
	LoaderNodeID   graft.ID = "adapter.owl.loader"
	FinderNodeID   graft.ID = "adapter.owl.finder"
)

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})

	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return NewRegistry(), nil
		},
	})

	graft.Register(graft.Node[*Loader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RunnerNodeID, RegistryNodeID},
		Run: func(ctx context.Context) (*Loader, error) {
			runner, err := graft.Dep[*Runner](ctx)
			if err != nil {
				return nil, err
			}
			registry, err := graft.Dep[*Registry](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(runner, registry), nil
		},
	})

	graft.Register(graft.Node[*Finder]{
		ID:        FinderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RunnerNodeID},
		Run: func(ctx context.Context) (*Finder, error) {
			runner, err := graft.Dep[*Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewFinder(runner), nil
		},
	})
}
