package owl

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// opKind enumerates pending document modifications.
type opKind int

const (
	opAddImport opKind = iota
	opUpdateImport
	opMergeImport
	opSetID
	opAddInferred
)

// op is one pending modification, applied in order on the next
// materialization.
type op struct {
	kind     opKind
	iri      string
	newIRI   string
	annotate bool
	reasoner string
	spec     domain.InferenceSpec
}

// Document implements ports.Ontology on top of the toolkit runner.
// Modifications accumulate as pending operations and are applied by a chain
// of toolkit invocations when the document is saved or inspected.
type Document struct {
	runner  *Runner
	catalog *Registry
	src     string
	ops     []op
}

// AddImport adds an import declaration for the given ontology IRI.
func (d *Document) AddImport(iri string) error {
	d.ops = append(d.ops, op{kind: opAddImport, iri: iri})
	return nil
}

// Imports returns the IRIs of all directly imported ontologies, with pending
// modifications applied.
func (d *Document) Imports(ctx context.Context) ([]string, error) {
	f, err := os.Open(d.src) //nolint:gosec // staged document path
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open ontology document")
	}
	defer f.Close() //nolint:errcheck

	imports, err := scanImports(f)
	if err != nil {
		return nil, zerr.With(err, "file", d.src)
	}

	for _, o := range d.ops {
		switch o.kind {
		case opAddImport:
			if !slices.Contains(imports, o.iri) {
				imports = append(imports, o.iri)
			}
		case opUpdateImport:
			for i, iri := range imports {
				if iri == o.iri {
					imports[i] = o.newIRI
				}
			}
		case opMergeImport:
			imports = slices.DeleteFunc(imports, func(iri string) bool {
				return iri == o.iri
			})
		}
	}

	_ = ctx
	return imports, nil
}

// HasImport reports whether the ontology declares an import of iri.
func (d *Document) HasImport(ctx context.Context, iri string) (bool, error) {
	imports, err := d.Imports(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(imports, iri), nil
}

// UpdateImportIRI rewrites an import declaration from oldIRI to newIRI.
func (d *Document) UpdateImportIRI(oldIRI, newIRI string) error {
	d.ops = append(d.ops, op{kind: opUpdateImport, iri: oldIRI, newIRI: newIRI})
	return nil
}

// MergeImport merges the axioms of an imported ontology into this document,
// removing the import declaration.
func (d *Document) MergeImport(iri string, annotate bool) error {
	d.ops = append(d.ops, op{kind: opMergeImport, iri: iri, annotate: annotate})
	return nil
}

// SetOntologyID sets the ontology IRI and, if versionIRI is non-empty, the
// version IRI.
func (d *Document) SetOntologyID(ontologyIRI, versionIRI string) error {
	d.ops = append(d.ops, op{kind: opSetID, iri: ontologyIRI, newIRI: versionIRI})
	return nil
}

// AddInferredAxioms runs the named reasoner and materializes inferred axioms
// into the document.
func (d *Document) AddInferredAxioms(reasoner string, spec domain.InferenceSpec) error {
	d.ops = append(d.ops, op{kind: opAddInferred, reasoner: reasoner, spec: spec})
	return nil
}

// CheckEntailments runs the named reasoner and reports consistency and
// unsatisfiable classes.
func (d *Document) CheckEntailments(ctx context.Context, reasoner string) (domain.EntailmentReport, error) {
	staged, cleanup, err := d.materialize(ctx)
	if err != nil {
		return domain.EntailmentReport{}, err
	}
	defer cleanup()

	args := []string{"check", "--reasoner", reasoner, "--input", staged}
	args = d.withCatalog(args)
	out, err := d.runner.RunCapture(ctx, args...)
	if err != nil {
		return domain.EntailmentReport{}, err
	}
	return parseEntailmentReport(out)
}

// SaveAs applies all pending modifications and writes the document to path.
func (d *Document) SaveAs(ctx context.Context, path, format string) error {
	staged, cleanup, err := d.materialize(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerr.Wrap(err, "failed to create output directory")
	}
	args := []string{"convert", "--input", staged, "--format", format, "--output", path}
	return d.runner.Run(ctx, d.withCatalog(args)...)
}

// Write applies all pending modifications and streams the document to w.
func (d *Document) Write(ctx context.Context, w io.Writer, format string) error {
	tmp, err := os.CreateTemp("", "ontoforge-doc-*.owl")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary document file")
	}
	tmpPath := tmp.Name()
	tmp.Close()              //nolint:errcheck
	defer os.Remove(tmpPath) //nolint:errcheck

	if err := d.SaveAs(ctx, tmpPath, format); err != nil {
		return err
	}
	f, err := os.Open(tmpPath) //nolint:gosec // temp file created above
	if err != nil {
		return zerr.Wrap(err, "failed to reopen converted document")
	}
	defer f.Close() //nolint:errcheck
	if _, err := io.Copy(w, f); err != nil {
		return zerr.Wrap(err, "failed to write ontology document")
	}
	return nil
}

// materialize applies the pending operation chain, producing a staged
// document file. Two staging files alternate as command input and output, so
// a toolkit command never reads and writes the same path. The caller must
// invoke cleanup when done with the result.
func (d *Document) materialize(ctx context.Context) (string, func(), error) {
	if len(d.ops) == 0 {
		return d.src, func() {}, nil
	}

	var stages [2]string
	for i := range stages {
		tmp, err := os.CreateTemp("", "ontoforge-stage-*.owl")
		if err != nil {
			for _, s := range stages[:i] {
				os.Remove(s) //nolint:errcheck
			}
			return "", nil, zerr.Wrap(err, "failed to create staging file")
		}
		stages[i] = tmp.Name()
		tmp.Close() //nolint:errcheck
	}
	cleanup := func() {
		for _, s := range stages {
			os.Remove(s) //nolint:errcheck
		}
	}

	current := d.src
	for i, o := range d.ops {
		staged := stages[i%2]
		args, err := o.commandArgs(current, staged)
		if err != nil {
			cleanup()
			return "", nil, err
		}
		if err := d.runner.Run(ctx, d.withCatalog(args)...); err != nil {
			cleanup()
			return "", nil, err
		}
		current = staged
	}
	return current, cleanup, nil
}

// withCatalog appends the IRI catalog argument when a registry is attached.
func (d *Document) withCatalog(args []string) []string {
	if d.catalog == nil || d.catalog.CatalogPath() == "" {
		return args
	}
	return append(args, "--catalog", d.catalog.CatalogPath())
}

// commandArgs translates one pending operation into a toolkit command line.
func (o op) commandArgs(input, output string) ([]string, error) {
	switch o.kind {
	case opAddImport:
		return []string{"add-import", "--input", input, "--iri", o.iri, "--output", output}, nil
	case opUpdateImport:
		return []string{
			"update-import", "--input", input,
			"--old-iri", o.iri, "--new-iri", o.newIRI, "--output", output,
		}, nil
	case opMergeImport:
		return []string{
			"merge-import", "--input", input, "--iri", o.iri,
			"--annotate=" + strconv.FormatBool(o.annotate), "--output", output,
		}, nil
	case opSetID:
		args := []string{"set-id", "--input", input, "--iri", o.iri, "--output", output}
		if o.newIRI != "" {
			args = append(args, "--version-iri", o.newIRI)
		}
		return args, nil
	case opAddInferred:
		args := []string{
			"reason", "--input", input, "--reasoner", o.reasoner,
			"--annotate=" + strconv.FormatBool(o.spec.Annotate),
			"--preprocess-inverses=" + strconv.FormatBool(o.spec.PreprocessInverses),
		}
		for _, t := range o.spec.Types {
			args = append(args, "--infer", t)
		}
		if o.spec.ExcludedTypesFile != "" {
			args = append(args, "--excluded-types-file", o.spec.ExcludedTypesFile)
		}
		return append(args, "--output", output), nil
	default:
		return nil, zerr.New("unknown pending document operation")
	}
}

// parseEntailmentReport reads the "check" subcommand's line-oriented output:
// a "consistent: <bool>" line followed by zero or more
// "unsatisfiable: <class IRI>" lines.
func parseEntailmentReport(out string) (domain.EntailmentReport, error) {
	report := domain.EntailmentReport{Consistent: true}
	seen := false
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "consistent:"):
			v, err := strconv.ParseBool(strings.TrimSpace(strings.TrimPrefix(line, "consistent:")))
			if err != nil {
				return domain.EntailmentReport{}, zerr.Wrap(err, "malformed consistency report")
			}
			report.Consistent = v
			seen = true
		case strings.HasPrefix(line, "unsatisfiable:"):
			report.UnsatisfiableClasses = append(
				report.UnsatisfiableClasses,
				strings.TrimSpace(strings.TrimPrefix(line, "unsatisfiable:")),
			)
		}
	}
	if !seen {
		return domain.EntailmentReport{}, zerr.New("the toolkit returned no consistency report")
	}
	return report, nil
}

var _ ports.Ontology = (*Document)(nil)
