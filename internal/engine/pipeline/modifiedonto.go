package pipeline

import (
	"context"
	"path/filepath"

	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// ModifiedOntoStep produces a "modified" version of the compiled ontology:
// with imports merged in, with inferred axioms added, or both.
type ModifiedOntoStep struct {
	deps         Deps
	proj         *config.Project
	onto         *OntoStep
	mergeImports bool
	reason       bool
}

// NewModifiedOntoStep returns the modified ontology step. The onto step
// supplies the raw compiled ontology this step derives from.
func NewModifiedOntoStep(
	deps Deps, proj *config.Project, onto *OntoStep, mergeImports, reason bool,
) *ModifiedOntoStep {
	return &ModifiedOntoStep{
		deps:         deps,
		proj:         proj,
		onto:         onto,
		mergeImports: mergeImports,
		reason:       reason,
	}
}

// OutputPath returns the path of the modified ontology file: the unsuffixed
// compiled ontology name with "-merged" and/or "-reasoned" appended.
func (s *ModifiedOntoStep) OutputPath() (string, error) {
	dest, err := s.onto.OutputPath(false)
	if err != nil {
		return "", err
	}
	if s.mergeImports {
		stem, ext := splitExt(dest)
		dest = stem + "-merged" + ext
	}
	if s.reason {
		stem, ext := splitExt(dest)
		dest = stem + "-reasoned" + ext
	}
	return dest, nil
}

func (s *ModifiedOntoStep) Name() string {
	switch {
	case s.mergeImports && s.reason:
		return "merged, reasoned ontology"
	case s.mergeImports:
		return "merged ontology"
	case s.reason:
		return "reasoned ontology"
	default:
		return "modified ontology"
	}
}

// BuildRequired reports whether the modified ontology is missing or older
// than the raw compiled ontology. When neither modification is requested
// there is never anything to do.
func (s *ModifiedOntoStep) BuildRequired() (bool, error) {
	if !s.mergeImports && !s.reason {
		return false, nil
	}

	output, err := s.OutputPath()
	if err != nil {
		return false, err
	}
	rawPath, err := s.onto.OutputPath(true)
	if err != nil {
		return false, err
	}

	if !isFile(output) {
		return true, nil
	}
	if !isFile(rawPath) {
		return true, nil
	}
	return outputStale(output, rawPath)
}

// Build loads the raw compiled ontology, applies the requested
// modifications, sets the development IRI and writes the result.
func (s *ModifiedOntoStep) Build(ctx context.Context) (domain.ProductSet, error) {
	rawPath, err := s.onto.OutputPath(true)
	if err != nil {
		return nil, err
	}
	if !isFile(rawPath) {
		return nil, zerr.With(
			zerr.New("the main compiled ontology file could not be found"), "file", rawPath,
		)
	}

	output, err := s.OutputPath()
	if err != nil {
		return nil, err
	}
	if !isDir(filepath.Dir(output)) {
		return nil, zerr.With(
			zerr.New("the destination directory for the ontology does not exist"),
			"dir", filepath.Dir(output),
		)
	}

	ont, err := s.deps.Ontologies.Load(rawPath)
	if err != nil {
		return nil, err
	}

	if s.mergeImports {
		s.deps.Logger.Info("Merging all imported ontologies into the main ontology...")
		imports, err := ont.Imports(ctx)
		if err != nil {
			return nil, err
		}
		for _, iri := range imports {
			if err := ont.MergeImport(iri, s.proj.AnnotateMerged()); err != nil {
				return nil, err
			}
		}
	}

	if s.reason {
		s.deps.Logger.Info("Running reasoner and adding inferred axioms...")
		reasoner, err := s.proj.Reasoner()
		if err != nil {
			return nil, err
		}
		types, err := s.proj.InferenceTypes()
		if err != nil {
			return nil, err
		}
		spec := domain.InferenceSpec{
			Types:              types,
			Annotate:           s.proj.AnnotateInferred(),
			PreprocessInverses: s.proj.PreprocessInverses(),
			ExcludedTypesFile:  s.proj.ExcludedTypesFile(),
		}
		if err := ont.AddInferredAxioms(reasoner, spec); err != nil {
			return nil, err
		}
	}

	ontIRI, err := s.proj.GenerateDevIRI(output)
	if err != nil {
		return nil, err
	}
	if err := ont.SetOntologyID(ontIRI, ""); err != nil {
		return nil, err
	}

	format, err := s.proj.OutputFormat()
	if err != nil {
		return nil, err
	}
	s.deps.Logger.Info("Writing compiled ontology to " + output + "...")
	if err := ont.SaveAs(ctx, output, format); err != nil {
		return nil, err
	}
	return domain.ProductSet{}, nil
}

func (s *ModifiedOntoStep) NotRequiredMessage() string {
	return "The compiled ontology files are already up to date."
}
