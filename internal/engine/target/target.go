// Package target implements the incremental build target graph: dependency-
// ordered, idempotent build steps with modification-time staleness checks and
// merged build products.
package target

import (
	"context"

	"github.com/ontoforge/ontoforge/internal/core/domain"
)

// Step is the unit of build work a concrete target implements. The Target
// wrapper supplies dependency ordering, skip logic, run-once caching and
// product merging on top of it.
type Step interface {
	// Name identifies the step in logs and product-conflict errors.
	Name() string

	// BuildRequired reports whether this step's own outputs are stale:
	// missing, or older than any declared input. It must be side-effect-free
	// and idempotent; callers invoke it repeatedly.
	BuildRequired() (bool, error)

	// Build performs the step's own work and returns its build products.
	Build(ctx context.Context) (domain.ProductSet, error)

	// NotRequiredMessage is the user-facing text printed when nothing needs
	// to be done.
	NotRequiredMessage() string
}

// Target is a node in the build DAG. Dependencies are fixed before Run is
// first called; the dependency list is never mutated afterwards.
//
// No cycle detection is performed: target graphs are constructed by trusted
// internal code, and a cyclic AddDependency call would recurse without bound
// during Run.
type Target struct {
	step     Step
	deps     []*Target
	ran      bool
	executed bool
}

// New wraps a step in a Target with no dependencies.
func New(step Step) *Target {
	return &Target{step: step}
}

// AddDependency appends dep to this target's dependency list. Dependency
// order is significant: dependencies run in list order, before this target's
// own work.
func (t *Target) AddDependency(dep *Target) {
	t.deps = append(t.deps, dep)
}

// Name returns the wrapped step's name.
func (t *Target) Name() string {
	return t.step.Name()
}

// NotRequiredMessage returns the wrapped step's nothing-to-do text.
func (t *Target) NotRequiredMessage() string {
	return t.step.NotRequiredMessage()
}

// BuildRequired reports whether running this target would perform any work:
// true if the step's own staleness check fires, or if any transitive
// dependency requires a build. It is a pure function of filesystem state and
// may be called any number of times, before or after Run.
func (t *Target) BuildRequired() (bool, error) {
	required, err := t.step.BuildRequired()
	if err != nil {
		return false, err
	}
	if required {
		return true, nil
	}
	for _, dep := range t.deps {
		required, err = dep.BuildRequired()
		if err != nil {
			return false, err
		}
		if required {
			return true, nil
		}
	}
	return false, nil
}

// Run builds this target: all dependencies run first, in list order, and
// their product sets are merged; then, if force is true or BuildRequired
// reported true at entry, the step's own work runs and its products are
// merged on top. A product key contributed twice anywhere in the graph is a
// hard failure.
//
// Run is idempotent per invocation: a target that already ran does not
// re-execute, and its products are handed out exactly once. A target shared
// by several dependents contributes each product key to the merged graph a
// single time.
func (t *Target) Run(ctx context.Context, force bool) (domain.ProductSet, error) {
	if t.ran {
		return domain.ProductSet{}, nil
	}

	// The staleness check happens before the dependencies rebuild. A stale
	// dependency that rebuilds becomes fresh, which would otherwise erase
	// the signal that this target's own work is needed.
	required := force
	if !required {
		var err error
		required, err = t.BuildRequired()
		if err != nil {
			return nil, err
		}
	}

	products := domain.ProductSet{}
	for _, dep := range t.deps {
		depProducts, err := dep.Run(ctx, force)
		if err != nil {
			return nil, err
		}
		if err := products.Merge(depProducts, dep.Name()); err != nil {
			return nil, err
		}
	}

	if required {
		own, err := t.step.Build(ctx)
		if err != nil {
			return nil, err
		}
		if err := products.Merge(own, t.step.Name()); err != nil {
			return nil, err
		}
		t.executed = true
	}

	t.ran = true
	return products, nil
}

// Executed reports whether this target's own work actually ran, as opposed
// to the dependency chain merely being walked.
func (t *Target) Executed() bool {
	return t.executed
}
