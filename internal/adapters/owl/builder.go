package owl

import (
	"context"
	"encoding/json"
	"os"
	"strconv"

	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder implements ports.OntologyBuilder. Entity descriptions accumulate
// until Finish, which hands the full set to the toolkit in one invocation so
// rows may forward-reference labels defined later in the sources.
type Builder struct {
	loader   *Loader
	base     string
	entities []domain.EntityDescription
	result   ports.Ontology
}

// entityDTO is the JSON shape of one entity description in the staged
// build manifest.
type entityDTO struct {
	Type   string            `json:"type"`
	Fields map[string]string `json:"fields"`
	File   string            `json:"file"`
	Row    int               `json:"row"`
}

// AddEntity records one entity description for compilation.
func (b *Builder) AddEntity(desc domain.EntityDescription) error {
	b.entities = append(b.entities, desc)
	return nil
}

// Finish compiles all recorded entities and their deferred axioms onto the
// base document.
func (b *Builder) Finish(ctx context.Context, expandDefs bool) error {
	manifest, err := b.writeManifest()
	if err != nil {
		return err
	}
	defer os.Remove(manifest) //nolint:errcheck

	out, err := os.CreateTemp("", "ontoforge-build-*.owl")
	if err != nil {
		return zerr.Wrap(err, "failed to create build staging file")
	}
	outPath := out.Name()
	out.Close() //nolint:errcheck

	args := []string{
		"build", "--base", b.base,
		"--entities", manifest,
		"--expand-defs=" + strconv.FormatBool(expandDefs),
		"--output", outPath,
	}
	if b.loader.catalog != nil && b.loader.catalog.CatalogPath() != "" {
		args = append(args, "--catalog", b.loader.catalog.CatalogPath())
	}
	if err := b.loader.runner.Run(ctx, args...); err != nil {
		os.Remove(outPath) //nolint:errcheck
		return err
	}

	b.result = &Document{runner: b.loader.runner, catalog: b.loader.catalog, src: outPath}
	return nil
}

// Ontology returns the compiled ontology. Valid only after Finish.
func (b *Builder) Ontology() ports.Ontology {
	return b.result
}

// writeManifest stages the accumulated entity descriptions as a JSON lines
// file.
func (b *Builder) writeManifest() (string, error) {
	tmp, err := os.CreateTemp("", "ontoforge-entities-*.jsonl")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create entity staging file")
	}

	enc := json.NewEncoder(tmp)
	for _, desc := range b.entities {
		dto := entityDTO{
			Type:   string(desc.Type),
			Fields: desc.Fields,
			File:   desc.File,
			Row:    desc.Row,
		}
		if err := enc.Encode(dto); err != nil {
			tmp.Close() //nolint:errcheck
			return "", zerr.Wrap(err, "failed to stage entity descriptions")
		}
	}
	if err := tmp.Close(); err != nil {
		return "", zerr.Wrap(err, "failed to finish entity staging file")
	}
	return tmp.Name(), nil
}

var _ ports.OntologyBuilder = (*Builder)(nil)
