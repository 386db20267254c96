package target

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/ontoforge/ontoforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Factory constructs a build target from the live options.
type Factory func(opts *domain.Options) (*Target, error)

// Discriminators are the extra option-name/value constraints that
// disambiguate multiple build targets registered under one task name.
type Discriminators map[string]any

// registration associates a factory with a task name and its discriminating
// option set.
type registration struct {
	name    string
	disc    Discriminators
	factory Factory
}

// Manager is the registry that maps (task name, options) pairs to build
// target constructors, with prefix name matching and argument-based
// disambiguation.
type Manager struct {
	regs []registration
}

// NewManager returns an empty registry.
func NewManager() *Manager {
	return &Manager{}
}

// Add registers a factory under a task name. Several registrations may share
// a name as long as their discriminator sets differ in content or
// cardinality.
func (m *Manager) Add(name string, disc Discriminators, factory Factory) {
	m.regs = append(m.regs, registration{name: name, disc: disc, factory: factory})
}

// Names returns the sorted, deduplicated registered task names.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.regs))
	for _, reg := range m.regs {
		names = append(names, reg.name)
	}
	sort.Strings(names)
	return slices.Compact(names)
}

// TaskArgNames returns the sorted "taskarg" discriminator values registered
// under the given task name. Used to build CLI usage text.
func (m *Manager) TaskArgNames(task string) []string {
	var args []string
	for _, reg := range m.regs {
		if reg.name != task {
			continue
		}
		if v, ok := reg.disc[domain.DiscTaskArg]; ok {
			args = append(args, fmt.Sprint(v))
		}
	}
	sort.Strings(args)
	return slices.Compact(args)
}

// Resolve finds the single best registration for a task name and the live
// options, and constructs its target.
//
// A registration is a candidate when the typed name is a prefix of its
// registered name (so abbreviated task names work) and every one of its
// discriminating options is present in opts with an equal value. Candidates
// are ranked by discriminator count: the most specific full match wins. No
// candidate is an unknown-target error; several candidates of equal top
// specificity are an ambiguity error. Both errors list the valid choices.
func (m *Manager) Resolve(name string, opts *domain.Options) (*Target, error) {
	type match struct {
		reg   registration
		count int
	}

	var matches []match
	for _, reg := range m.regs {
		if !strings.HasPrefix(reg.name, name) {
			continue
		}
		count := 0
		for key, want := range reg.disc {
			got, ok := opts.Discriminant(key)
			if ok && got == want {
				count++
			}
		}
		// Partial discriminator matches are discarded: every registered
		// key must have matched.
		if count == len(reg.disc) {
			matches = append(matches, match{reg: reg, count: count})
		}
	}

	if len(matches) == 0 {
		err := zerr.Wrap(domain.ErrUnknownBuildTarget, "no build target matches the requested task")
		err = zerr.With(err, "task", name)
		return nil, zerr.With(err, "valid_tasks", strings.Join(m.Names(), ", "))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].count > matches[j].count
	})

	if len(matches) > 1 && matches[0].count == matches[1].count {
		tied := make([]string, 0, len(matches))
		for _, c := range matches {
			if c.count == matches[0].count {
				tied = append(tied, c.reg.name)
			}
		}
		err := zerr.Wrap(domain.ErrAmbiguousBuildTarget, "the task name matches several build targets")
		err = zerr.With(err, "task", name)
		return nil, zerr.With(err, "candidates", strings.Join(tied, ", "))
	}

	return matches[0].reg.factory(opts)
}
