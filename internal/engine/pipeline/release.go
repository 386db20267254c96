package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// releaseFile describes one file of a release: where it comes from, where it
// goes, and the IRIs it is published under.
type releaseFile struct {
	sourcePath string
	destPath   string
	oldIRI     string
	destIRI    string
	versionIRI string
}

// ReleaseStep assembles a dated release: the raw, merged and merged-reasoned
// ontology files plus all import modules, re-identified with release and
// version IRIs.
type ReleaseStep struct {
	deps       Deps
	proj       *config.Project
	merged     *ModifiedOntoStep
	reasoned   *ModifiedOntoStep
	imports    *ImportsStep
	releaseDir string
}

// NewReleaseStep returns the release step. The merged and merged-reasoned
// steps supply the modified ontology files included in the release; dateStr
// overrides today's date and must be formatted YYYY-MM-DD.
func NewReleaseStep(
	deps Deps, proj *config.Project,
	merged, reasoned *ModifiedOntoStep, imports *ImportsStep, dateStr string,
) (*ReleaseStep, error) {
	if dateStr == "" {
		dateStr = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return nil, zerr.With(
			zerr.New(
				"the custom release date string is invalid; it must be in the format "+
					"YYYY-MM-DD and must represent a valid date",
			),
			"release_date", dateStr,
		)
	}

	return &ReleaseStep{
		deps:       deps,
		proj:       proj,
		merged:     merged,
		reasoned:   reasoned,
		imports:    imports,
		releaseDir: filepath.Join(proj.ProjectDir(), "releases", dateStr),
	}, nil
}

// ReleaseDir returns the dated release directory.
func (s *ReleaseStep) ReleaseDir() string {
	return s.releaseDir
}

// ontologyFile builds the release description of one ontology file. The main
// released ontology carries the configured release ontology IRI; the others
// get IRIs generated from their file names.
func (s *ReleaseStep) ontologyFile(sourcePath, suffix string, isMain bool) (releaseFile, error) {
	ontPath, err := s.proj.OntologyFilePath()
	if err != nil {
		return releaseFile{}, err
	}
	stem, ext := splitExt(filepath.Base(ontPath))
	destPath := filepath.Join(s.releaseDir, stem+suffix+ext)

	var destIRI string
	if isMain {
		destIRI, err = s.proj.ReleaseOntologyIRI()
	} else {
		destIRI, err = s.proj.GenerateReleaseIRI(filepath.Base(destPath))
	}
	if err != nil {
		return releaseFile{}, err
	}

	versionIRI, err := s.proj.GenerateReleaseIRI(destPath)
	if err != nil {
		return releaseFile{}, err
	}

	return releaseFile{
		sourcePath: sourcePath,
		destPath:   destPath,
		destIRI:    destIRI,
		versionIRI: versionIRI,
	}, nil
}

// importFile builds the release description of one import module file.
func (s *ReleaseStep) importFile(sourcePath, oldIRI string) (releaseFile, error) {
	rel, err := filepath.Rel(s.proj.ProjectDir(), sourcePath)
	if err != nil {
		return releaseFile{}, zerr.Wrap(err, "failed to relativize an import module path")
	}

	destPath := filepath.Join(s.releaseDir, rel)
	destIRI, err := s.proj.GenerateReleaseIRI(rel)
	if err != nil {
		return releaseFile{}, err
	}
	versionIRI, err := s.proj.GenerateReleaseIRI(destPath)
	if err != nil {
		return releaseFile{}, err
	}

	return releaseFile{
		sourcePath: sourcePath,
		destPath:   destPath,
		oldIRI:     oldIRI,
		destIRI:    destIRI,
		versionIRI: versionIRI,
	}, nil
}

// buildInfo assembles the full list of ontology and import module release
// files.
func (s *ReleaseStep) buildInfo() (onts, imports []releaseFile, err error) {
	rawPath, err := s.merged.onto.OutputPath(true)
	if err != nil {
		return nil, nil, err
	}
	rawFile, err := s.ontologyFile(rawPath, "-raw", false)
	if err != nil {
		return nil, nil, err
	}

	mergedPath, err := s.merged.OutputPath()
	if err != nil {
		return nil, nil, err
	}
	mergedFile, err := s.ontologyFile(mergedPath, "-merged", false)
	if err != nil {
		return nil, nil, err
	}

	reasonedPath, err := s.reasoned.OutputPath()
	if err != nil {
		return nil, nil, err
	}
	mainFile, err := s.ontologyFile(reasonedPath, "", true)
	if err != nil {
		return nil, nil, err
	}
	onts = []releaseFile{rawFile, mergedFile, mainFile}

	modules, err := s.imports.ImportsInfo()
	if err != nil {
		return nil, nil, err
	}
	for _, mod := range modules {
		if mod.Filename == "" {
			continue
		}
		modFile, err := s.importFile(mod.Filename, mod.IRI)
		if err != nil {
			return nil, nil, err
		}
		imports = append(imports, modFile)
	}

	return onts, imports, nil
}

func (s *ReleaseStep) Name() string {
	return "ontology release"
}

// BuildRequired reports true iff any release file is missing. Content
// freshness is deferred to the dependency chain.
func (s *ReleaseStep) BuildRequired() (bool, error) {
	onts, imports, err := s.buildInfo()
	if err != nil {
		return false, err
	}
	for _, f := range append(onts, imports...) {
		if !isFile(f.destPath) {
			return true, nil
		}
	}
	return false, nil
}

// Build writes the release: import modules first, then the ontology files,
// each re-identified with its release and version IRIs. Import declarations
// pointing at pre-release module IRIs are rewritten to the released version
// IRIs.
func (s *ReleaseStep) Build(ctx context.Context) (domain.ProductSet, error) {
	onts, imports, err := s.buildInfo()
	if err != nil {
		return nil, err
	}

	if err := ensureDir(s.releaseDir); err != nil {
		return nil, err
	}
	if len(imports) > 0 {
		if err := ensureDir(filepath.Dir(imports[0].destPath)); err != nil {
			return nil, err
		}
	}

	format, err := s.proj.OutputFormat()
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Info("Creating release import modules...")
	for _, f := range imports {
		ont, err := s.deps.Ontologies.Load(f.sourcePath)
		if err != nil {
			return nil, err
		}
		if err := ont.SetOntologyID(f.destIRI, f.versionIRI); err != nil {
			return nil, err
		}
		if err := ont.SaveAs(ctx, f.destPath, format); err != nil {
			return nil, err
		}
	}

	s.deps.Logger.Info("Creating release ontology files...")
	for _, f := range onts {
		ont, err := s.deps.Ontologies.Load(f.sourcePath)
		if err != nil {
			return nil, err
		}
		if err := ont.SetOntologyID(f.destIRI, f.versionIRI); err != nil {
			return nil, err
		}
		for _, imp := range imports {
			has, err := ont.HasImport(ctx, imp.oldIRI)
			if err != nil {
				return nil, err
			}
			if has {
				if err := ont.UpdateImportIRI(imp.oldIRI, imp.versionIRI); err != nil {
					return nil, err
				}
			}
		}
		if err := ont.SaveAs(ctx, f.destPath, format); err != nil {
			return nil, err
		}
	}

	return domain.ProductSet{}, nil
}

func (s *ReleaseStep) NotRequiredMessage() string {
	return "The release files are already up to date."
}
