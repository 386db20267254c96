// Package config provides the project configuration loader for ontoforge.
package config

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ontoforge/ontoforge/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the project configuration file looked up when no
// explicit path is given.
const DefaultFileName = "ontology.yaml"

// Project provides validated access to the settings of one ontology project.
// Relative paths are interpreted relative to the configuration file;
// ontology outputs must stay inside the project directory.
type Project struct {
	dto      projectFile
	confDir  string
	confPath string
}

// Load reads a project configuration file.
func Load(filename string) (*Project, error) {
	data, err := os.ReadFile(filename) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read project configuration file")
	}

	var dto projectFile
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse project configuration file")
	}

	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve configuration file path")
	}

	return &Project{dto: dto, confDir: filepath.Dir(abs), confPath: abs}, nil
}

// Defaults returns a configuration that yields only default values, rooted
// at dir. Used by tasks that can run without a project file.
func Defaults(dir string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve project directory")
	}
	return &Project{confDir: abs}, nil
}

// ProjectDir returns the project root directory, as determined by the
// location of the configuration file.
func (p *Project) ProjectDir() string {
	return p.confDir
}

// ConfigFilePath returns the absolute path of the configuration file, or the
// empty string for a defaults-only configuration.
func (p *Project) ConfigFilePath() string {
	return p.confPath
}

// absPath resolves pathstr relative to the project directory.
func (p *Project) absPath(pathstr string) string {
	if filepath.IsAbs(pathstr) {
		return filepath.Clean(pathstr)
	}
	return filepath.Join(p.confDir, pathstr)
}

// inProject reports whether sub lies strictly inside the project directory.
func (p *Project) inProject(sub string) bool {
	rel, err := filepath.Rel(p.confDir, p.absPath(sub))
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// OntologyFilePath returns the full path of the base compiled ontology file.
func (p *Project) OntologyFilePath() (string, error) {
	if p.dto.Ontology.File == "" {
		return "", zerr.Wrap(
			domain.ErrConfig,
			"an ontology file name was not provided; set \"ontology.file\" in the project configuration",
		)
	}
	abs := p.absPath(p.dto.Ontology.File)
	if !p.inProject(abs) {
		err := zerr.Wrap(domain.ErrConfig, "the compiled ontology file path is not inside the project folder")
		err = zerr.With(err, "path", abs)
		return "", zerr.With(err, "project_dir", p.confDir)
	}
	return abs, nil
}

// OntFileBase returns the ontology file name without its extension.
func (p *Project) OntFileBase() (string, error) {
	ontpath, err := p.OntologyFilePath()
	if err != nil {
		return "", err
	}
	name := filepath.Base(ontpath)
	return strings.TrimSuffix(name, filepath.Ext(name)), nil
}

// BaseOntologyPath returns the path of the base ontology source file.
func (p *Project) BaseOntologyPath() (string, error) {
	if p.dto.Ontology.BaseFile != "" {
		return p.absPath(p.dto.Ontology.BaseFile), nil
	}
	base, err := p.OntFileBase()
	if err != nil {
		return "", err
	}
	return p.absPath(filepath.Join("src", base+"-base.owl")), nil
}

// EntitySourceDir returns the directory holding the term description tables.
func (p *Project) EntitySourceDir() string {
	dir := p.dto.Ontology.EntitySourceDir
	if dir == "" {
		dir = filepath.Join("src", "entities")
	}
	return p.absPath(dir)
}

// EntitySourceFilePatterns returns the term table path patterns, resolved
// against the entity source directory. Patterns may contain shell-style
// wildcards; expansion is left to the caller.
func (p *Project) EntitySourceFilePatterns() []string {
	dir := p.EntitySourceDir()
	patterns := make([]string, 0, len(p.dto.Ontology.EntitySourceFiles))
	for _, pat := range p.dto.Ontology.EntitySourceFiles {
		if pat == "" {
			continue
		}
		if filepath.IsAbs(pat) {
			patterns = append(patterns, filepath.Clean(pat))
		} else {
			patterns = append(patterns, filepath.Join(dir, pat))
		}
	}
	return patterns
}

// ExpandEntityDefs reports whether term labels in text definitions are
// expanded with their identifiers. Defaults to true.
func (p *Project) ExpandEntityDefs() bool {
	if p.dto.Ontology.ExpandEntityDefs == nil {
		return true
	}
	return *p.dto.Ontology.ExpandEntityDefs
}

// InSourceBuilds reports whether build products are written next to their
// sources instead of into the build directory.
func (p *Project) InSourceBuilds() bool {
	return p.dto.Build.InSource
}

// BuildDir returns the build directory path.
func (p *Project) BuildDir() string {
	dir := p.dto.Build.Dir
	if dir == "" {
		dir = "build"
	}
	return p.absPath(dir)
}

// ImportsSrcDir returns the directory holding the import specification
// sources.
func (p *Project) ImportsSrcDir() string {
	dir := p.dto.Imports.SrcDir
	if dir == "" {
		dir = filepath.Join("src", "imports")
	}
	return p.absPath(dir)
}

// ImportsDir returns the directory that receives compiled import modules for
// in-source builds.
func (p *Project) ImportsDir() string {
	dir := p.dto.Imports.Dir
	if dir == "" {
		dir = "imports"
	}
	return p.absPath(dir)
}

// TopImportsFilePath returns the path of the top-level imports source file.
func (p *Project) TopImportsFilePath() string {
	f := p.dto.Imports.TopFile
	if f == "" {
		return filepath.Join(p.ImportsSrcDir(), "imported_ontologies.csv")
	}
	return p.absPath(f)
}

// ImportModSuffix returns the suffix appended to import module file names.
func (p *Project) ImportModSuffix() (string, error) {
	if p.dto.Imports.ModuleSuffix != "" {
		return p.dto.Imports.ModuleSuffix, nil
	}
	base, err := p.OntFileBase()
	if err != nil {
		return "", err
	}
	return "_" + base + "_import_module.owl", nil
}

// Reasoner returns the configured reasoner name. Defaults to HermiT.
func (p *Project) Reasoner() (string, error) {
	name := p.dto.Reasoning.Reasoner
	if name == "" {
		return "HermiT", nil
	}
	for _, known := range domain.Reasoners {
		if strings.EqualFold(name, known) {
			return known, nil
		}
	}
	err := zerr.With(zerr.Wrap(domain.ErrConfig, "invalid reasoner name"), "reasoner", name)
	return "", zerr.With(err, "valid_reasoners", strings.Join(domain.Reasoners, ", "))
}

// InferenceTypes returns the axiom types the reasoning step materializes.
func (p *Project) InferenceTypes() ([]string, error) {
	if len(p.dto.Reasoning.InferenceTypes) == 0 {
		return slices.Clone(domain.DefaultInferenceTypes), nil
	}
	for _, t := range p.dto.Reasoning.InferenceTypes {
		if !slices.Contains(domain.InferenceTypes, t) {
			err := zerr.With(zerr.Wrap(domain.ErrConfig, "invalid inference type"), "type", t)
			return nil, zerr.With(err, "valid_types", strings.Join(domain.InferenceTypes, ", "))
		}
	}
	return slices.Clone(p.dto.Reasoning.InferenceTypes), nil
}

// AnnotateInferred reports whether inferred axioms are annotated as such.
func (p *Project) AnnotateInferred() bool {
	return p.dto.Reasoning.AnnotateInferred
}

// PreprocessInverses reports whether inverse property axioms are expanded
// before reasoning.
func (p *Project) PreprocessInverses() bool {
	return p.dto.Reasoning.PreprocessInverses
}

// ExcludedTypesFile returns the path of the excluded inference types file,
// or the empty string when none is configured.
func (p *Project) ExcludedTypesFile() string {
	if p.dto.Reasoning.ExcludedTypesFile == "" {
		return ""
	}
	return p.absPath(p.dto.Reasoning.ExcludedTypesFile)
}

// AnnotateMerged reports whether axioms merged from imports are annotated
// with their origin. Defaults to true.
func (p *Project) AnnotateMerged() bool {
	if p.dto.Reasoning.AnnotateMerged == nil {
		return true
	}
	return *p.dto.Reasoning.AnnotateMerged
}

// OutputFormat returns the ontology serialization format. Defaults to
// RDF/XML.
func (p *Project) OutputFormat() (string, error) {
	format := p.dto.Output.Format
	if format == "" {
		return "RDF/XML", nil
	}
	for _, known := range domain.OutputFormats {
		if strings.EqualFold(format, known) {
			return known, nil
		}
	}
	err := zerr.With(zerr.Wrap(domain.ErrConfig, "invalid output format"), "format", format)
	return "", zerr.With(err, "valid_formats", strings.Join(domain.OutputFormats, ", "))
}

// fileIRI converts a local path into a file IRI.
func fileIRI(pathstr string) string {
	return "file://" + filepath.ToSlash(pathstr)
}

// validateIRI checks that s is an absolute IRI.
func validateIRI(s, setting string) error {
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		err := zerr.With(zerr.Wrap(domain.ErrConfig, "invalid IRI string"), "iri", s)
		return zerr.With(err, "setting", setting)
	}
	return nil
}

// DevBaseIRI returns the base IRI for non-released ontology documents and
// import modules. Without an explicit setting, a file IRI for the project
// directory is used.
func (p *Project) DevBaseIRI() (string, error) {
	iri := p.dto.IRIs.DevBase
	if iri == "" {
		return fileIRI(p.confDir), nil
	}
	if err := validateIRI(iri, "iris.dev_base"); err != nil {
		return "", err
	}
	return iri, nil
}

// ReleaseBaseIRI returns the base IRI for released ontology documents.
// Falls back to the development base IRI.
func (p *Project) ReleaseBaseIRI() (string, error) {
	iri := p.dto.IRIs.ReleaseBase
	if iri == "" {
		return p.DevBaseIRI()
	}
	if err := validateIRI(iri, "iris.release_base"); err != nil {
		return "", err
	}
	return iri, nil
}

// ReleaseOntologyIRI returns the IRI of the main released ontology.
func (p *Project) ReleaseOntologyIRI() (string, error) {
	iri := p.dto.IRIs.ReleaseOntology
	if iri == "" {
		ontpath, err := p.OntologyFilePath()
		if err != nil {
			return "", err
		}
		return p.GenerateReleaseIRI(filepath.Base(ontpath))
	}
	if err := validateIRI(iri, "iris.release_ontology"); err != nil {
		return "", err
	}
	return iri, nil
}

// generatePathIRI appends a project-relative path to a base IRI. The path
// must be inside the project directory.
func (p *Project) generatePathIRI(pathstr, baseIRI string) (string, error) {
	var rel string
	if filepath.IsAbs(pathstr) {
		if !p.inProject(pathstr) {
			err := zerr.Wrap(domain.ErrConfig, "path is not inside the project folder, no IRI can be generated")
			err = zerr.With(err, "path", pathstr)
			return "", zerr.With(err, "project_dir", p.confDir)
		}
		var err error
		rel, err = filepath.Rel(p.confDir, pathstr)
		if err != nil {
			return "", zerr.Wrap(err, "failed to relativize path")
		}
	} else {
		rel = pathstr
	}

	u, err := url.Parse(baseIRI)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrConfig, "invalid base IRI"), "iri", baseIRI)
	}
	u.Path = path.Join(u.Path, filepath.ToSlash(rel))
	return u.String(), nil
}

// GenerateDevIRI generates a development IRI for a project path.
func (p *Project) GenerateDevIRI(pathstr string) (string, error) {
	base, err := p.DevBaseIRI()
	if err != nil {
		return "", err
	}
	return p.generatePathIRI(pathstr, base)
}

// GenerateReleaseIRI generates a release IRI for a project path.
func (p *Project) GenerateReleaseIRI(pathstr string) (string, error) {
	base, err := p.ReleaseBaseIRI()
	if err != nil {
		return "", err
	}
	return p.generatePathIRI(pathstr, base)
}

// ImportsDevBaseIRI returns the base IRI used when generating import module
// IRIs.
func (p *Project) ImportsDevBaseIRI() (string, error) {
	outdir := p.BuildDir()
	if p.InSourceBuilds() {
		outdir = p.ImportsDir()
	}
	return p.GenerateDevIRI(outdir)
}
