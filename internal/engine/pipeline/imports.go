package pipeline

import (
	"context"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// topImportsSchema is the column contract of the top-level imports file.
var topImportsSchema = domain.TableSchema{
	Required: []string{"Entities file", "IRI"},
	Optional: []string{"Ignore"},
}

// importTermsSchema is the column contract of per-module import terms files.
var importTermsSchema = domain.TableSchema{
	Required: []string{"ID"},
	Optional: []string{"Exclude", "Method", "Related entities", "Ignore"},
	Defaults: map[string]string{"Method": "Locality"},
}

// importSpec is one validated row of the top-level imports file.
type importSpec struct {
	iri       string
	termsPath string // empty: the whole source ontology is imported directly
}

// ImportsStep compiles the import modules named by the top-level imports
// file. Local module IRI mappings are registered at construction so any
// later ontology load resolves modules from their compiled local files.
type ImportsStep struct {
	deps  Deps
	proj  *config.Project
	cache *sourceCache
	specs []importSpec
}

// NewImportsStep reads and validates the top-level imports file and
// registers the IRI mappings for all compiled modules.
func NewImportsStep(deps Deps, proj *config.Project) (*ImportsStep, error) {
	s := &ImportsStep{
		deps:  deps,
		proj:  proj,
		cache: newSourceCache(proj.BuildDir(), deps.Fetcher),
	}

	if !isFile(proj.TopImportsFilePath()) {
		return nil, zerr.With(
			zerr.New("the top-level imports source file could not be found"),
			"file", proj.TopImportsFilePath(),
		)
	}
	if err := s.readImportsSource(); err != nil {
		return nil, err
	}

	if err := deps.Mapper.SetCatalogPath(
		filepath.Join(proj.BuildDir(), "catalog-v001.xml"),
	); err != nil {
		return nil, err
	}
	modules, err := s.ImportsInfo()
	if err != nil {
		return nil, err
	}
	for _, mod := range modules {
		if mod.Filename == "" {
			continue
		}
		if err := deps.Mapper.AddMapping(mod.IRI, fileIRI(mod.Filename)); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// readImportsSource parses the top-level imports file: every non-ignored row
// gets its source IRI validated and its terms file path resolved relative to
// the imports file.
func (s *ImportsStep) readImportsSource() error {
	topPath := s.proj.TopImportsFilePath()
	reader, err := s.deps.Tables.Open(topPath)
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
		table.SetSchema(topImportsSchema)

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

			iri, err := row.Get("IRI")
			if err != nil {
				return err
			}
			if u, err := url.Parse(iri); err != nil || !u.IsAbs() {
				return row.WithContext(zerr.With(
					zerr.Wrap(domain.ErrTableRow, "invalid source ontology IRI string"),
					"iri", iri,
				))
			}

			termsPath, err := row.Get("Entities file")
			if err != nil {
				return err
			}
			if termsPath != "" {
				if !filepath.IsAbs(termsPath) {
					termsPath = filepath.Join(filepath.Dir(topPath), termsPath)
				}
				if !isFile(termsPath) {
					return row.WithContext(zerr.With(
						zerr.Wrap(domain.ErrTableRow, "could not find the input terms file"),
						"terms_file", termsPath,
					))
				}
			}

			s.specs = append(s.specs, importSpec{iri: iri, termsPath: termsPath})
		}
	}
}

// outputDir returns the destination directory for compiled import modules.
func (s *ImportsStep) outputDir() string {
	if s.proj.InSourceBuilds() {
		return s.proj.ImportsDir()
	}
	return s.proj.BuildDir()
}

// moduleFileName derives a module file name from the source ontology IRI.
func (s *ImportsStep) moduleFileName(sourceIRI string) (string, error) {
	suffix, err := s.proj.ImportModSuffix()
	if err != nil {
		return "", err
	}
	stem, _ := splitExt(path.Base(sourceIRI))
	return stem + suffix, nil
}

// modulePath returns the full path of the compiled module for a source IRI.
func (s *ImportsStep) modulePath(sourceIRI string) (string, error) {
	name, err := s.moduleFileName(sourceIRI)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.outputDir(), name), nil
}

// moduleIRI returns the IRI used for the compiled module of a source IRI.
func (s *ImportsStep) moduleIRI(sourceIRI string) (string, error) {
	base, err := s.proj.ImportsDevBaseIRI()
	if err != nil {
		return "", err
	}
	name, err := s.moduleFileName(sourceIRI)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", zerr.With(
			zerr.Wrap(domain.ErrConfig, "invalid base IRI for generating import module IRIs"),
			"iri", base,
		)
	}
	u.Path = path.Join(u.Path, name)
	return u.String(), nil
}

// ImportsInfo returns a file name/IRI pair for every import defined in the
// top-level imports file. Directly imported source ontologies carry their
// own IRI and no file name.
func (s *ImportsStep) ImportsInfo() ([]domain.ModuleInfo, error) {
	infos := make([]domain.ModuleInfo, 0, len(s.specs))
	for _, spec := range s.specs {
		if spec.termsPath == "" {
			infos = append(infos, domain.ModuleInfo{IRI: spec.iri})
			continue
		}
		modPath, err := s.modulePath(spec.iri)
		if err != nil {
			return nil, err
		}
		modIRI, err := s.moduleIRI(spec.iri)
		if err != nil {
			return nil, err
		}
		infos = append(infos, domain.ModuleInfo{Filename: modPath, IRI: modIRI})
	}
	return infos, nil
}

func (s *ImportsStep) Name() string {
	return "import modules"
}

// BuildRequired reports whether any import module is missing or older than
// its terms file. Directly imported ontologies never need a build.
func (s *ImportsStep) BuildRequired() (bool, error) {
	for _, spec := range s.specs {
		if spec.termsPath == "" {
			continue
		}
		modPath, err := s.modulePath(spec.iri)
		if err != nil {
			return false, err
		}
		stale, err := outputStale(modPath, spec.termsPath)
		if err != nil {
			return false, err
		}
		if stale {
			return true, nil
		}
	}
	return false, nil
}

// Build compiles every stale import module: the source ontology is fetched
// into the local cache if absent, the module is extracted from the terms
// rows, and the result is written under the module IRI.
func (s *ImportsStep) Build(ctx context.Context) (domain.ProductSet, error) {
	if s.proj.InSourceBuilds() {
		if err := ensureDir(s.outputDir()); err != nil {
			return nil, err
		}
	}

	format, err := s.proj.OutputFormat()
	if err != nil {
		return nil, err
	}

	for _, spec := range s.specs {
		if spec.termsPath == "" {
			continue
		}
		modPath, err := s.modulePath(spec.iri)
		if err != nil {
			return nil, err
		}
		stale, err := outputStale(modPath, spec.termsPath)
		if err != nil {
			return nil, err
		}
		if !stale {
			continue
		}
		if err := s.buildModule(ctx, spec, modPath, format); err != nil {
			return nil, err
		}
	}
	return domain.ProductSet{}, nil
}

func (s *ImportsStep) buildModule(
	ctx context.Context, spec importSpec, modPath, format string,
) error {
	s.deps.Logger.Info("Building the " + spec.iri + " import module.")

	sourceFile, finalIRI, err := s.cache.ensure(ctx, spec.iri)
	if err != nil {
		return err
	}
	// Requests for the source ontology load the cached local copy, under the
	// declared IRI and, when the source redirected, under its final IRI too.
	if err := s.deps.Mapper.AddMapping(spec.iri, fileIRI(sourceFile)); err != nil {
		return err
	}
	if finalIRI != spec.iri {
		if err := s.deps.Mapper.AddMapping(finalIRI, fileIRI(sourceFile)); err != nil {
			return err
		}
	}

	terms, err := s.readImportTerms(spec.termsPath)
	if err != nil {
		return err
	}

	modIRI, err := s.moduleIRI(spec.iri)
	if err != nil {
		return err
	}
	module, err := s.deps.Ontologies.ExtractModule(ctx, sourceFile, terms, modIRI)
	if err != nil {
		return err
	}
	return module.SaveAs(ctx, modPath, format)
}

// readImportTerms parses a per-module terms file.
func (s *ImportsStep) readImportTerms(termsPath string) ([]domain.ImportTerm, error) {
	reader, err := s.deps.Tables.Open(termsPath)
	if err != nil {
		return nil, err
	}
	defer reader.Close() //nolint:errcheck

	var terms []domain.ImportTerm
	for {
		table, err := reader.NextTable()
		if err == io.EOF {
			return terms, nil
		}
		if err != nil {
			return nil, err
		}
		table.SetSchema(importTermsSchema)

		for {
			row, err := table.NextRow()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}

			ignore, err := row.Get("Ignore")
			if err != nil {
				return nil, err
			}
			if domain.IsTrueString(ignore) {
				continue
			}

			id, err := row.Get("ID")
			if err != nil {
				return nil, err
			}
			exclude, err := row.Get("Exclude")
			if err != nil {
				return nil, err
			}
			method, err := row.Get("Method")
			if err != nil {
				return nil, err
			}
			related, err := row.Get("Related entities")
			if err != nil {
				return nil, err
			}

			terms = append(terms, domain.ImportTerm{
				ID:              id,
				Exclude:         domain.IsTrueString(exclude),
				Method:          strings.ToLower(method),
				RelatedEntities: related,
			})
		}
	}
}

func (s *ImportsStep) NotRequiredMessage() string {
	return "All import modules are already up to date."
}
