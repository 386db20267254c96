package pipeline

import (
	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/engine/target"
)

// The constructors below assemble the build target graphs for the
// registered tasks. Shared dependencies appear once per graph, so the
// run-once semantics of Target make a step shared by several dependents do
// its work a single time.

// newImportsGraph wires build directory -> imports and returns both the
// target and the step, which dependents query for module information.
func newImportsGraph(deps Deps, proj *config.Project) (*target.Target, *ImportsStep, error) {
	step, err := NewImportsStep(deps, proj)
	if err != nil {
		return nil, nil, err
	}
	t := target.New(step)
	t.AddDependency(target.New(NewBuildDirStep(proj)))
	return t, step, nil
}

// newOntoGraph wires imports -> compiled ontology.
func newOntoGraph(deps Deps, proj *config.Project, opts *domain.Options) (*target.Target, *OntoStep, *ImportsStep, error) {
	importsTarget, importsStep, err := newImportsGraph(deps, proj)
	if err != nil {
		return nil, nil, nil, err
	}

	expand := proj.ExpandEntityDefs() && !opts.NoDefExpand
	step := NewOntoStep(deps, proj, importsStep, expand)
	t := target.New(step)
	t.AddDependency(importsTarget)
	return t, step, importsStep, nil
}

// NewImportsTarget builds the target graph for "make imports".
func NewImportsTarget(deps Deps, proj *config.Project, _ *domain.Options) (*target.Target, error) {
	t, _, err := newImportsGraph(deps, proj)
	return t, err
}

// NewOntoTarget builds the target graph for "make ontology".
func NewOntoTarget(deps Deps, proj *config.Project, opts *domain.Options) (*target.Target, error) {
	t, _, _, err := newOntoGraph(deps, proj, opts)
	return t, err
}

// NewModifiedOntoTarget builds the target graph for "make ontology" with
// merged imports and/or inferred axioms requested.
func NewModifiedOntoTarget(deps Deps, proj *config.Project, opts *domain.Options) (*target.Target, error) {
	merge := opts.MergeImports.Or(false)
	reason := opts.Reason.Or(false)

	ontoTarget, ontoStep, _, err := newOntoGraph(deps, proj, opts)
	if err != nil {
		return nil, err
	}

	step := NewModifiedOntoStep(deps, proj, ontoStep, merge, reason)
	t := target.New(step)
	// With no modification requested there is nothing this target adds, so
	// it carries no dependencies either.
	if merge || reason {
		t.AddDependency(ontoTarget)
	}
	return t, nil
}

// NewReleaseTarget builds the target graph for "make release": a merged and
// a merged-reasoned ontology on top of one shared compiled ontology, then
// the dated release assembly.
func NewReleaseTarget(deps Deps, proj *config.Project, opts *domain.Options) (*target.Target, error) {
	ontoTarget, ontoStep, importsStep, err := newOntoGraph(deps, proj, opts)
	if err != nil {
		return nil, err
	}

	mergedStep := NewModifiedOntoStep(deps, proj, ontoStep, true, false)
	mergedTarget := target.New(mergedStep)
	mergedTarget.AddDependency(ontoTarget)

	reasonedStep := NewModifiedOntoStep(deps, proj, ontoStep, true, true)
	reasonedTarget := target.New(reasonedStep)
	reasonedTarget.AddDependency(ontoTarget)

	step, err := NewReleaseStep(deps, proj, mergedStep, reasonedStep, importsStep, opts.ReleaseDate)
	if err != nil {
		return nil, err
	}
	t := target.New(step)
	t.AddDependency(mergedTarget)
	t.AddDependency(reasonedTarget)
	return t, nil
}

// NewErrorCheckTarget builds the target graph for "error_check".
func NewErrorCheckTarget(deps Deps, proj *config.Project, opts *domain.Options) (*target.Target, error) {
	ontoTarget, ontoStep, _, err := newOntoGraph(deps, proj, opts)
	if err != nil {
		return nil, err
	}

	t := target.New(NewErrorCheckStep(deps, proj, ontoStep))
	t.AddDependency(ontoTarget)
	return t, nil
}

// NewUpdateBaseTarget builds the target graph for "update_base".
func NewUpdateBaseTarget(deps Deps, proj *config.Project, _ *domain.Options) (*target.Target, error) {
	importsTarget, importsStep, err := newImportsGraph(deps, proj)
	if err != nil {
		return nil, err
	}

	t := target.New(NewUpdateBaseStep(deps, proj, importsStep))
	t.AddDependency(importsTarget)
	return t, nil
}

// NewInferencePipelineTarget builds the target graph for
// "inference_pipeline".
func NewInferencePipelineTarget(deps Deps, proj *config.Project, opts *domain.Options) (*target.Target, error) {
	step, err := NewInferencePipelineStep(deps, proj, opts.InputData, opts.FileOut)
	if err != nil {
		return nil, err
	}
	return target.New(step), nil
}

// NewFindEntitiesTarget builds the target graph for "find_entities".
func NewFindEntitiesTarget(deps Deps, opts *domain.Options) (*target.Target, error) {
	step, err := NewFindEntitiesStep(deps, opts.SearchOnts, opts.InputData, opts.FileOut)
	if err != nil {
		return nil, err
	}
	return target.New(step), nil
}

// NewInitTarget builds the target graph for "initialize". The task argument
// names the new ontology file.
func NewInitTarget(deps Deps, targetDir string, opts *domain.Options) (*target.Target, error) {
	step, err := NewInitStep(deps, targetDir, opts.TaskArg.Or(""))
	if err != nil {
		return nil, err
	}
	return target.New(step), nil
}
