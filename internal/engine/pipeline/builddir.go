package pipeline

import (
	"context"
	"os"

	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// BuildDirStep creates the project build directory.
type BuildDirStep struct {
	proj *config.Project
}

// NewBuildDirStep returns the build directory step.
func NewBuildDirStep(proj *config.Project) *BuildDirStep {
	return &BuildDirStep{proj: proj}
}

func (s *BuildDirStep) Name() string {
	return "build directory"
}

// BuildRequired reports true iff the build directory does not yet exist.
func (s *BuildDirStep) BuildRequired() (bool, error) {
	return !isDir(s.proj.BuildDir()), nil
}

func (s *BuildDirStep) Build(_ context.Context) (domain.ProductSet, error) {
	dir := s.proj.BuildDir()
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		return nil, zerr.With(
			zerr.New("a file with the same name as the build directory already exists"),
			"path", dir,
		)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, zerr.Wrap(err, "failed to create the build directory")
	}
	return domain.ProductSet{}, nil
}

func (s *BuildDirStep) NotRequiredMessage() string {
	return "The project build directory is already in place."
}
