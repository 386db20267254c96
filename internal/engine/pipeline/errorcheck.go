package pipeline

import (
	"context"
	"strings"

	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/core/domain"
)

// ErrorCheckStep checks the compiled ontology for entailment errors:
// inconsistency and incoherence. A logically broken ontology is a diagnostic
// result reported to the user, not a build failure.
type ErrorCheckStep struct {
	deps Deps
	proj *config.Project
	onto *OntoStep
}

// NewErrorCheckStep returns the entailment check step.
func NewErrorCheckStep(deps Deps, proj *config.Project, onto *OntoStep) *ErrorCheckStep {
	return &ErrorCheckStep{deps: deps, proj: proj, onto: onto}
}

func (s *ErrorCheckStep) Name() string {
	return "entailment check"
}

// BuildRequired always reports true: a requested check is always run.
func (s *ErrorCheckStep) BuildRequired() (bool, error) {
	return true, nil
}

func (s *ErrorCheckStep) Build(ctx context.Context) (domain.ProductSet, error) {
	rawPath, err := s.onto.OutputPath(true)
	if err != nil {
		return nil, err
	}
	ont, err := s.deps.Ontologies.Load(rawPath)
	if err != nil {
		return nil, err
	}

	reasoner, err := s.proj.Reasoner()
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Info("Checking for entailment errors...")
	report, err := ont.CheckEntailments(ctx, reasoner)
	if err != nil {
		return nil, err
	}

	switch {
	case !report.Consistent:
		s.deps.Logger.Info(
			"ERROR: The ontology is inconsistent (that is, it has no models). " +
				"This is often caused by the presence of an individual (that is, a " +
				"class instance) that is explicitly or implicitly a member of two " +
				"disjoint classes. It might also indicate an underlying modeling " +
				"error. Regardless, it is a serious problem because an inconsistent " +
				"ontology cannot be used for logical inference.",
		)
	case len(report.UnsatisfiableClasses) > 0:
		classes := "<" + strings.Join(report.UnsatisfiableClasses, ">\n<") + ">"
		s.deps.Logger.Info(
			"ERROR: The ontology is consistent but incoherent because it contains " +
				"one or more unsatisfiable classes. This usually indicates a modeling " +
				"error. The following classes are unsatisfiable:\n" + classes,
		)
	default:
		s.deps.Logger.Info(
			"The ontology is consistent and coherent. No entailment problems were found.",
		)
	}

	return domain.ProductSet{}, nil
}

func (s *ErrorCheckStep) NotRequiredMessage() string {
	return "The ontology entailment check is already up to date."
}
