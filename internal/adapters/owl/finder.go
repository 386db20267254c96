package owl

import (
	"context"
	"encoding/json"
	"os"

	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Finder implements ports.EntityFinder by delegating search to the toolkit's
// find subcommand, which indexes labels and annotation values across the
// registered documents.
type Finder struct {
	runner *Runner
	paths  []string
}

// NewFinder creates an empty entity finder.
func NewFinder(runner *Runner) *Finder {
	return &Finder{runner: runner}
}

// AddOntology registers the ontology document at path for searching.
func (f *Finder) AddOntology(_ context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return zerr.Wrap(err, "failed to open ontology document")
	}
	f.paths = append(f.paths, path)
	return nil
}

// matchDTO is the JSON shape of one search result from the toolkit.
type matchDTO struct {
	IRI         string   `json:"iri"`
	Labels      []string `json:"labels"`
	Annotation  string   `json:"annotation"`
	Value       string   `json:"value"`
	FullMatch   bool     `json:"full_match"`
	Definitions []string `json:"definitions"`
}

// Find returns all entities matching the search term, either fully or as a
// subphrase.
func (f *Finder) Find(ctx context.Context, term string) ([]domain.EntityMatch, error) {
	if len(f.paths) == 0 {
		return nil, zerr.New("no ontology documents registered for searching")
	}

	args := []string{"find", "--term", term}
	for _, p := range f.paths {
		args = append(args, "--input", p)
	}
	out, err := f.runner.RunCapture(ctx, args...)
	if err != nil {
		return nil, err
	}

	var dtos []matchDTO
	if err := json.Unmarshal([]byte(out), &dtos); err != nil {
		return nil, zerr.Wrap(err, "malformed search result from the toolkit")
	}

	matches := make([]domain.EntityMatch, 0, len(dtos))
	for _, dto := range dtos {
		matches = append(matches, domain.EntityMatch{
			IRI:         dto.IRI,
			Labels:      dto.Labels,
			Annotation:  dto.Annotation,
			Value:       dto.Value,
			FullMatch:   dto.FullMatch,
			Definitions: dto.Definitions,
		})
	}
	return matches, nil
}

var _ ports.EntityFinder = (*Finder)(nil)
