package owl

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.OntologyLoader on top of the toolkit runner.
type Loader struct {
	runner  *Runner
	catalog *Registry
}

// NewLoader creates an ontology loader sharing one runner and IRI registry.
func NewLoader(runner *Runner, catalog *Registry) *Loader {
	return &Loader{runner: runner, catalog: catalog}
}

// Load opens the ontology document at path.
func (l *Loader) Load(path string) (ports.Ontology, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, zerr.Wrap(err, "failed to open ontology document")
	}
	return &Document{runner: l.runner, catalog: l.catalog, src: path}, nil
}

// LoadFrom reads an ontology document from r into a staging file.
func (l *Loader) LoadFrom(r io.Reader) (ports.Ontology, error) {
	tmp, err := os.CreateTemp("", "ontoforge-load-*.owl")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create staging file")
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close() //nolint:errcheck
		return nil, zerr.Wrap(err, "failed to stage ontology document")
	}
	if err := tmp.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to finish staging file")
	}
	return &Document{runner: l.runner, catalog: l.catalog, src: tmp.Name()}, nil
}

// NewBuilder starts an ontology build on top of the base document at
// basePath.
func (l *Loader) NewBuilder(basePath string) (ports.OntologyBuilder, error) {
	if _, err := os.Stat(basePath); err != nil {
		return nil, zerr.Wrap(err, "failed to open base ontology document")
	}
	return &Builder{loader: l, base: basePath}, nil
}

// ExtractModule builds an import module holding the given terms from the
// source ontology document at sourcePath, identified by moduleIRI.
func (l *Loader) ExtractModule(
	ctx context.Context, sourcePath string, terms []domain.ImportTerm, moduleIRI string,
) (ports.Ontology, error) {
	termFile, err := writeTermFile(terms)
	if err != nil {
		return nil, err
	}
	defer os.Remove(termFile) //nolint:errcheck

	out, err := os.CreateTemp("", "ontoforge-module-*.owl")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create module staging file")
	}
	outPath := out.Name()
	out.Close() //nolint:errcheck

	args := []string{
		"extract", "--input", sourcePath,
		"--term-file", termFile,
		"--module-iri", moduleIRI,
		"--output", outPath,
	}
	if l.catalog != nil && l.catalog.CatalogPath() != "" {
		args = append(args, "--catalog", l.catalog.CatalogPath())
	}
	if err := l.runner.Run(ctx, args...); err != nil {
		os.Remove(outPath) //nolint:errcheck
		return nil, err
	}
	return &Document{runner: l.runner, catalog: l.catalog, src: outPath}, nil
}

// writeTermFile stages an import term list as a CSV file for the toolkit's
// extract subcommand.
func writeTermFile(terms []domain.ImportTerm) (string, error) {
	tmp, err := os.CreateTemp("", "ontoforge-terms-*.csv")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create term staging file")
	}

	w := csv.NewWriter(tmp)
	if err := w.Write([]string{"id", "exclude", "method", "related_entities"}); err != nil {
		tmp.Close() //nolint:errcheck
		return "", zerr.Wrap(err, "failed to stage import terms")
	}
	for _, t := range terms {
		record := []string{t.ID, strconv.FormatBool(t.Exclude), t.Method, t.RelatedEntities}
		if err := w.Write(record); err != nil {
			tmp.Close() //nolint:errcheck
			return "", zerr.Wrap(err, "failed to stage import terms")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close() //nolint:errcheck
		return "", zerr.Wrap(err, "failed to stage import terms")
	}
	if err := tmp.Close(); err != nil {
		return "", zerr.Wrap(err, "failed to finish term staging file")
	}
	return tmp.Name(), nil
}

var _ ports.OntologyLoader = (*Loader)(nil)
