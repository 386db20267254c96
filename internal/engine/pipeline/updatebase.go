package pipeline

import (
	"context"
	"path/filepath"

	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// UpdateBaseStep adds an import declaration for every compiled import module
// to the base ontology, so ontology editors pick up the full imports set.
type UpdateBaseStep struct {
	deps    Deps
	proj    *config.Project
	imports *ImportsStep
}

// NewUpdateBaseStep returns the base ontology update step.
func NewUpdateBaseStep(deps Deps, proj *config.Project, imports *ImportsStep) *UpdateBaseStep {
	return &UpdateBaseStep{deps: deps, proj: proj, imports: imports}
}

// OutputPath returns the path of the updated base ontology file: the base
// ontology itself for in-source builds, a copy in the build directory
// otherwise.
func (s *UpdateBaseStep) OutputPath() (string, error) {
	basePath, err := s.proj.BaseOntologyPath()
	if err != nil {
		return "", err
	}
	if s.proj.InSourceBuilds() {
		return basePath, nil
	}
	return filepath.Join(s.proj.BuildDir(), filepath.Base(basePath)), nil
}

func (s *UpdateBaseStep) Name() string {
	return "base ontology imports"
}

// BuildRequired always reports true for in-source builds, because the output
// is the base ontology itself and freshness cannot be judged without reading
// its contents. Out-of-source builds compare the copy's modification time
// against the configuration file, the base ontology and the top-level
// imports file.
func (s *UpdateBaseStep) BuildRequired() (bool, error) {
	if s.proj.InSourceBuilds() {
		return true, nil
	}

	output, err := s.OutputPath()
	if err != nil {
		return false, err
	}

	basePath, err := s.proj.BaseOntologyPath()
	if err != nil {
		return false, err
	}

	inputs := []string{basePath, s.proj.TopImportsFilePath()}
	if s.proj.ConfigFilePath() != "" {
		inputs = append([]string{s.proj.ConfigFilePath()}, inputs...)
	}
	return outputStale(output, inputs...)
}

func (s *UpdateBaseStep) Build(ctx context.Context) (domain.ProductSet, error) {
	basePath, err := s.proj.BaseOntologyPath()
	if err != nil {
		return nil, err
	}
	if !isFile(basePath) {
		return nil, zerr.With(
			zerr.New("the base ontology file could not be found"), "file", basePath,
		)
	}

	output, err := s.OutputPath()
	if err != nil {
		return nil, err
	}
	if !isDir(filepath.Dir(output)) {
		return nil, zerr.With(
			zerr.New("the destination directory for the updated base ontology file does not exist"),
			"dir", filepath.Dir(output),
		)
	}

	ont, err := s.deps.Ontologies.Load(basePath)
	if err != nil {
		return nil, err
	}

	modules, err := s.imports.ImportsInfo()
	if err != nil {
		return nil, err
	}
	for _, mod := range modules {
		if err := ont.AddImport(mod.IRI); err != nil {
			return nil, err
		}
	}

	format, err := s.proj.OutputFormat()
	if err != nil {
		return nil, err
	}
	s.deps.Logger.Info("Writing updated base ontology to " + output + "...")
	if err := ont.SaveAs(ctx, output, format); err != nil {
		return nil, err
	}
	return domain.ProductSet{}, nil
}

func (s *UpdateBaseStep) NotRequiredMessage() string {
	return "The base ontology is already up to date."
}
