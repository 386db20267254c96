package config

import (
	"context"

	"github.com/grindlemire/graft"
)

// Resolver locates and loads project configurations for build targets.
type Resolver struct{}

// Resolve loads the project configuration named by path, falling back to
// the default file name in the current directory when path is empty.
func (Resolver) Resolve(path string) (*Project, error) {
	if path == "" {
		path = DefaultFileName
	}
	return Load(path)
}

// DefaultsFor returns a defaults-only configuration rooted at dir, for
// tasks that can run without a project file.
func (Resolver) DefaultsFor(dir string) (*Project, error) {
	return Defaults(dir)
}

// NodeID is the unique identifier for the configuration resolver Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[Resolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Resolver, error) {
			return Resolver{}, nil
		},
	})
}
