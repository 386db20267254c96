package fetch

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ontoforge/ontoforge/internal/core/ports"
)

// NodeID is the unique identifier for the HTTP fetcher Graft node.
const NodeID graft.ID = "adapter.fetch"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fetcher, error) {
			return NewClient(nil), nil
		},
	})
}
