package pipeline

import (
	"context"

	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// InferencePipelineStep runs the standalone inferencing pipeline: an
// ontology or data set is read from a file or stdin, inferred axioms are
// added, and the result is written to a file or stdout. It has no build
// dependencies and works without a project configuration file.
type InferencePipelineStep struct {
	deps    Deps
	proj    *config.Project
	srcPath string
	outPath string
}

// NewInferencePipelineStep returns the inferencing pipeline step. Empty
// srcPath and outPath select stdin and stdout.
func NewInferencePipelineStep(
	deps Deps, proj *config.Project, srcPath, outPath string,
) (*InferencePipelineStep, error) {
	if srcPath != "" && !isFile(srcPath) {
		return nil, zerr.With(
			zerr.New("the input ontology/data file could not be found"), "file", srcPath,
		)
	}
	return &InferencePipelineStep{deps: deps, proj: proj, srcPath: srcPath, outPath: outPath}, nil
}

func (s *InferencePipelineStep) Name() string {
	return "inferencing pipeline"
}

// BuildRequired always reports true: all input is external.
func (s *InferencePipelineStep) BuildRequired() (bool, error) {
	return true, nil
}

func (s *InferencePipelineStep) Build(ctx context.Context) (domain.ProductSet, error) {
	var ont ports.Ontology
	var err error
	if s.srcPath != "" {
		ont, err = s.deps.Ontologies.Load(s.srcPath)
	} else {
		ont, err = s.deps.Ontologies.LoadFrom(s.deps.Stdin)
	}
	if err != nil {
		return nil, err
	}

	reasoner, err := s.proj.Reasoner()
	if err != nil {
		return nil, err
	}
	types, err := s.proj.InferenceTypes()
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Info("Running reasoner and adding inferred axioms...")
	spec := domain.InferenceSpec{
		Types:              types,
		Annotate:           s.proj.AnnotateInferred(),
		PreprocessInverses: s.proj.PreprocessInverses(),
		ExcludedTypesFile:  s.proj.ExcludedTypesFile(),
	}
	if err := ont.AddInferredAxioms(reasoner, spec); err != nil {
		return nil, err
	}

	format, err := s.proj.OutputFormat()
	if err != nil {
		return nil, err
	}
	if s.outPath != "" {
		s.deps.Logger.Info("Writing compiled ontology to " + s.outPath + "...")
		if err := ont.SaveAs(ctx, s.outPath, format); err != nil {
			return nil, err
		}
	} else {
		if err := ont.Write(ctx, s.deps.Stdout, format); err != nil {
			return nil, err
		}
	}
	return domain.ProductSet{}, nil
}

func (s *InferencePipelineStep) NotRequiredMessage() string {
	return "The inferencing pipeline input is already up to date."
}
