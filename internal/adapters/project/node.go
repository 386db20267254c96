package project

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ontoforge/ontoforge/internal/adapters/logger"
)

// NodeID is the unique identifier for the project scaffolder Graft node.
const NodeID graft.ID = "adapter.project"

func init() {
	graft.Register(graft.Node[*Scaffolder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Scaffolder, error) {
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScaffolder(log), nil
		},
	})
}
