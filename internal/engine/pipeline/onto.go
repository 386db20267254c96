package pipeline

import (
	"context"
	"io"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// termsSchema is the column contract of entity terms files.
var termsSchema = domain.TableSchema{
	Required: []string{"Type", "ID"},
	Optional: []string{
		"Comments", "Text definition", "Parent", "Subclass of", "Superclass of",
		"Equivalent to", "Disjoint with", "Inverse", "Characteristics",
		"Relations", "Data facts", "Annotations", "Ignore", "Subproperty of",
		"Superproperty of", "Domain", "Range",
	},
}

// OntoStep compiles the main ontology from the base ontology document and
// the entity terms tables.
type OntoStep struct {
	deps    Deps
	proj    *config.Project
	imports *ImportsStep
	expand  bool
}

// NewOntoStep returns the main ontology compilation step. The imports step
// supplies the module IRIs to declare as imports; defExpansion controls
// whether term labels in text definitions are expanded with identifiers.
func NewOntoStep(deps Deps, proj *config.Project, imports *ImportsStep, defExpansion bool) *OntoStep {
	return &OntoStep{deps: deps, proj: proj, imports: imports, expand: defExpansion}
}

// OutputPath returns the path of the compiled ontology file. withSuffix
// selects the "-raw" form; derived steps use the unsuffixed form as the stem
// for their own output names.
func (s *OntoStep) OutputPath(withSuffix bool) (string, error) {
	ontPath, err := s.proj.OntologyFilePath()
	if err != nil {
		return "", err
	}

	name := filepath.Base(ontPath)
	if withSuffix {
		stem, ext := splitExt(name)
		name = stem + "-raw" + ext
	}

	if s.proj.InSourceBuilds() {
		return filepath.Join(filepath.Dir(ontPath), name), nil
	}
	return filepath.Join(s.proj.BuildDir(), name), nil
}

// sourceFiles expands the configured entity source patterns into a sorted,
// deduplicated list of existing files. A non-wildcard pattern that matches
// nothing is an error.
func (s *OntoStep) sourceFiles() ([]string, error) {
	seen := map[string]bool{}
	for _, pattern := range s.proj.EntitySourceFilePatterns() {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrConfig, "invalid entity source file pattern"),
				"pattern", pattern,
			)
		}
		if len(matches) == 0 {
			if isGlobPattern(pattern) {
				continue
			}
			return nil, zerr.With(
				zerr.New("the source terms/entities file(s) could not be found"),
				"pattern", pattern,
			)
		}
		for _, m := range matches {
			if !isFile(m) {
				return nil, zerr.With(
					zerr.New("the source terms/entities path exists but is not a valid file"),
					"path", m,
				)
			}
			seen[m] = true
		}
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

// isGlobPattern reports whether a path pattern contains wildcards.
func isGlobPattern(pattern string) bool {
	for _, c := range pattern {
		if c == '*' || c == '?' || c == '[' || c == '{' {
			return true
		}
	}
	return false
}

func (s *OntoStep) Name() string {
	return "compiled ontology"
}

// BuildRequired reports whether the compiled ontology is missing or older
// than the configuration file, the base ontology, any entity source file, or
// the top-level imports file.
func (s *OntoStep) BuildRequired() (bool, error) {
	output, err := s.OutputPath(true)
	if err != nil {
		return false, err
	}

	basePath, err := s.proj.BaseOntologyPath()
	if err != nil {
		return false, err
	}
	if !isFile(basePath) {
		return false, zerr.With(
			zerr.New("the base ontology file could not be found"), "file", basePath,
		)
	}

	sources, err := s.sourceFiles()
	if err != nil {
		return false, err
	}

	inputs := make([]string, 0, len(sources)+3)
	if s.proj.ConfigFilePath() != "" {
		inputs = append(inputs, s.proj.ConfigFilePath())
	}
	inputs = append(inputs, basePath)
	inputs = append(inputs, sources...)
	inputs = append(inputs, s.proj.TopImportsFilePath())

	return outputStale(output, inputs...)
}

// Build compiles the ontology: entities from all terms tables are defined on
// the base ontology, import declarations are added for every module, the
// development IRI is set, and the result is written to the output path.
func (s *OntoStep) Build(ctx context.Context) (domain.ProductSet, error) {
	basePath, err := s.proj.BaseOntologyPath()
	if err != nil {
		return nil, err
	}
	output, err := s.OutputPath(true)
	if err != nil {
		return nil, err
	}
	if s.proj.InSourceBuilds() {
		if err := ensureDir(filepath.Dir(output)); err != nil {
			return nil, err
		}
	}

	builder, err := s.deps.Ontologies.NewBuilder(basePath)
	if err != nil {
		return nil, err
	}

	sources, err := s.sourceFiles()
	if err != nil {
		return nil, err
	}
	for _, source := range sources {
		if err := s.parseTermsFile(source, builder); err != nil {
			return nil, err
		}
	}

	s.deps.Logger.Info("Defining all remaining entity axioms...")
	if err := builder.Finish(ctx, s.expand); err != nil {
		return nil, err
	}
	ont := builder.Ontology()

	modules, err := s.imports.ImportsInfo()
	if err != nil {
		return nil, err
	}
	for _, mod := range modules {
		if err := ont.AddImport(mod.IRI); err != nil {
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

// parseTermsFile feeds every non-ignored entity row of one terms file to the
// ontology builder. Axioms referencing other entities are deferred inside
// the builder, so files and rows may be processed in any order.
func (s *OntoStep) parseTermsFile(path string, builder ports.OntologyBuilder) error {
	s.deps.Logger.Info("Parsing " + path + "...")

	reader, err := s.deps.Tables.Open(path)
	if err != nil {
		return err
	}
	defer reader.Close() //nolint:errcheck

	for {
		table, err := reader.NextTable()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		table.SetSchema(termsSchema)

		for {
			row, err := table.NextRow()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}

			ignore, err := row.Get("Ignore")
			if err != nil {
				return err
			}
			if domain.IsTrueString(ignore) {
				continue
			}

			typeStr, err := row.Get("Type")
			if err != nil {
				return err
			}
			entType, err := domain.ParseEntityType(typeStr)
			if err != nil {
				return row.WithContext(zerr.Wrap(domain.ErrTableRow, err.Error()))
			}

			fields := make(map[string]string, len(row.Columns()))
			for _, col := range row.Columns() {
				v, err := row.Get(col)
				if err != nil {
					return err
				}
				fields[col] = v
			}

			if err := builder.AddEntity(domain.EntityDescription{
				Type:   entType,
				Fields: fields,
				File:   row.File,
				Row:    row.Num,
			}); err != nil {
				return row.WithContext(err)
			}
		}
	}
}

func (s *OntoStep) NotRequiredMessage() string {
	return "The compiled ontology is already up to date."
}
