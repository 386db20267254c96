// Package app implements the application layer for ontoforge: build target
// registration, resolution and execution.
package app

import (
	"context"

	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/engine/pipeline"
	"github.com/ontoforge/ontoforge/internal/engine/target"
)

// App wires the registered build targets to the collaborators they run
// with.
type App struct {
	deps     pipeline.Deps
	resolver config.Resolver
	manager  *target.Manager
}

// New creates the application with its full build target registry.
func New(deps pipeline.Deps, resolver config.Resolver) *App {
	a := &App{
		deps:     deps,
		resolver: resolver,
		manager:  target.NewManager(),
	}
	a.registerTargets()
	return a
}

// loadConfig resolves the project configuration for a build target. Targets
// that can run without a project file get a defaults-only configuration when
// no file is named and none is found in the working directory.
func (a *App) loadConfig(opts *domain.Options, required bool) (*config.Project, error) {
	if required || opts.ConfigFile != "" {
		return a.resolver.Resolve(opts.ConfigFile)
	}
	if proj, err := a.resolver.Resolve(""); err == nil {
		return proj, nil
	}
	return a.resolver.DefaultsFor(".")
}

// projectFactory adapts a pipeline target constructor into a registry
// factory that first resolves the project configuration.
func (a *App) projectFactory(
	construct func(pipeline.Deps, *config.Project, *domain.Options) (*target.Target, error),
	cfgRequired bool,
) target.Factory {
	return func(opts *domain.Options) (*target.Target, error) {
		proj, err := a.loadConfig(opts, cfgRequired)
		if err != nil {
			return nil, err
		}
		return construct(a.deps, proj, opts)
	}
}

// registerTargets declares every build target the CLI can run, with the
// discriminating options that select among targets sharing a task name.
func (a *App) registerTargets() {
	a.manager.Add("initialize", nil, func(opts *domain.Options) (*target.Target, error) {
		return pipeline.NewInitTarget(a.deps, ".", opts)
	})

	a.manager.Add(
		"make",
		target.Discriminators{domain.DiscTaskArg: "imports"},
		a.projectFactory(pipeline.NewImportsTarget, true),
	)
	a.manager.Add(
		"make",
		target.Discriminators{
			domain.DiscTaskArg:      "ontology",
			domain.DiscMergeImports: false,
			domain.DiscReason:       false,
		},
		a.projectFactory(pipeline.NewOntoTarget, true),
	)
	a.manager.Add(
		"make",
		target.Discriminators{domain.DiscTaskArg: "ontology"},
		a.projectFactory(pipeline.NewModifiedOntoTarget, true),
	)
	a.manager.Add(
		"make",
		target.Discriminators{domain.DiscTaskArg: "release"},
		a.projectFactory(pipeline.NewReleaseTarget, true),
	)

	for _, name := range []string{"update_base", "updatebase"} {
		a.manager.Add(name, nil, a.projectFactory(pipeline.NewUpdateBaseTarget, true))
	}
	for _, name := range []string{"error_check", "errorcheck"} {
		a.manager.Add(name, nil, a.projectFactory(pipeline.NewErrorCheckTarget, true))
	}
	for _, name := range []string{"inference_pipeline", "inferencepipeline", "ipl"} {
		a.manager.Add(name, nil, a.projectFactory(pipeline.NewInferencePipelineTarget, false))
	}
	for _, name := range []string{"find_entities", "findentities", "fe"} {
		a.manager.Add(name, nil, func(opts *domain.Options) (*target.Target, error) {
			return pipeline.NewFindEntitiesTarget(a.deps, opts)
		})
	}
}

// TaskNames returns the registered task names for usage text.
func (a *App) TaskNames() []string {
	return a.manager.Names()
}

// TaskArgNames returns the registered task argument names for a task, for
// usage text.
func (a *App) TaskArgNames(task string) []string {
	return a.manager.TaskArgNames(task)
}

// Run resolves the requested build target and runs it. When nothing needs
// to be done and no forced run is requested, the target's nothing-to-do
// message is printed instead.
func (a *App) Run(ctx context.Context, opts *domain.Options) error {
	tgt, err := a.manager.Resolve(opts.Task, opts)
	if err != nil {
		return err
	}

	required, err := tgt.BuildRequired()
	if err != nil {
		return err
	}
	if !required && !opts.Force {
		a.deps.Logger.Info(tgt.NotRequiredMessage())
		return nil
	}

	_, err = tgt.Run(ctx, opts.Force)
	return err
}
