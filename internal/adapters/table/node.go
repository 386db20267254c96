package table

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ontoforge/ontoforge/internal/core/ports"
)

// NodeID is the unique identifier for the table opener Graft node.
const NodeID graft.ID = "adapter.table"

func init() {
	graft.Register(graft.Node[ports.TableOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TableOpener, error) {
			return NewOpener(), nil
		},
	})
}
