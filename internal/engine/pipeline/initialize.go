package pipeline

import (
	"context"

	"github.com/ontoforge/ontoforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// InitStep scaffolds a new ontology project in the current directory.
type InitStep struct {
	deps        Deps
	targetDir   string
	ontFileName string
}

// NewInitStep returns the project initialization step. ontFileName is the
// name for the new OWL ontology file.
func NewInitStep(deps Deps, targetDir, ontFileName string) (*InitStep, error) {
	if ontFileName == "" {
		return nil, zerr.New(
			"a name for the new ontology file must be provided, e.g.: " +
				"ontoforge initialize myontology.owl",
		)
	}
	return &InitStep{deps: deps, targetDir: targetDir, ontFileName: ontFileName}, nil
}

func (s *InitStep) Name() string {
	return "project initialization"
}

// BuildRequired always reports true: initializing a project is always an
// explicit request.
func (s *InitStep) BuildRequired() (bool, error) {
	return true, nil
}

func (s *InitStep) Build(_ context.Context) (domain.ProductSet, error) {
	if err := s.deps.Scaffolder.Create(s.targetDir, s.ontFileName); err != nil {
		return nil, err
	}
	return domain.ProductSet{}, nil
}

func (s *InitStep) NotRequiredMessage() string {
	return "The project is already initialized."
}
