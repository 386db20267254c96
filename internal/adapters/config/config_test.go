package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a project configuration file into a fresh project
// directory and loads it.
func writeConfig(t *testing.T, content string) *config.Project {
	t.Helper()
	dir := t.TempDir()
	confPath := filepath.Join(dir, config.DefaultFileName)
	require.NoError(t, os.WriteFile(confPath, []byte(content), 0o644))

	proj, err := config.Load(confPath)
	require.NoError(t, err)
	return proj
}

const minimalConfig = `
ontology:
  file: test.owl
`

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestProjectPaths(t *testing.T) {
	proj := writeConfig(t, minimalConfig)
	dir := proj.ProjectDir()

	ontPath, err := proj.OntologyFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "test.owl"), ontPath)

	base, err := proj.OntFileBase()
	require.NoError(t, err)
	assert.Equal(t, "test", base)

	basePath, err := proj.BaseOntologyPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "src", "test-base.owl"), basePath)

	assert.Equal(t, filepath.Join(dir, "src", "entities"), proj.EntitySourceDir())
	assert.Equal(t, filepath.Join(dir, "build"), proj.BuildDir())
	assert.Equal(t, filepath.Join(dir, "src", "imports"), proj.ImportsSrcDir())
	assert.Equal(t, filepath.Join(dir, "imports"), proj.ImportsDir())
	assert.Equal(
		t, filepath.Join(dir, "src", "imports", "imported_ontologies.csv"),
		proj.TopImportsFilePath(),
	)

	suffix, err := proj.ImportModSuffix()
	require.NoError(t, err)
	assert.Equal(t, "_test_import_module.owl", suffix)
}

func TestProjectDefaults(t *testing.T) {
	proj := writeConfig(t, minimalConfig)

	assert.True(t, proj.ExpandEntityDefs())
	assert.False(t, proj.InSourceBuilds())
	assert.True(t, proj.AnnotateMerged())
	assert.False(t, proj.AnnotateInferred())

	reasoner, err := proj.Reasoner()
	require.NoError(t, err)
	assert.Equal(t, "HermiT", reasoner)

	types, err := proj.InferenceTypes()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultInferenceTypes, types)

	format, err := proj.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, "RDF/XML", format)
}

func TestOntologyFileRequired(t *testing.T) {
	proj := writeConfig(t, "ontology: {}\n")

	_, err := proj.OntologyFilePath()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestOntologyFileOutsideProject(t *testing.T) {
	proj := writeConfig(t, "ontology:\n  file: ../elsewhere/test.owl\n")

	_, err := proj.OntologyFilePath()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestExplicitSettings(t *testing.T) {
	proj := writeConfig(t, `
ontology:
  file: ontology/test.owl
  base_file: src/custom-base.owl
  entity_source_dir: src/terms
  entity_source_files: [test_classes.csv, "*_properties.csv"]
  expand_entity_defs: false
build:
  dir: out
  insource_builds: true
imports:
  src_dir: src/own_imports
  dir: modules
  top_file: toplevel.csv
  module_suffix: _custom_suffix.owl
reasoning:
  reasoner: elk
  inference_types: [subclasses, types]
  annotate_inferred: true
  preprocess_inverses: true
  annotate_merged: false
output:
  format: turtle
`)
	dir := proj.ProjectDir()

	basePath, err := proj.BaseOntologyPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "src", "custom-base.owl"), basePath)

	patterns := proj.EntitySourceFilePatterns()
	assert.Equal(t, []string{
		filepath.Join(dir, "src", "terms", "test_classes.csv"),
		filepath.Join(dir, "src", "terms", "*_properties.csv"),
	}, patterns)

	assert.False(t, proj.ExpandEntityDefs())
	assert.True(t, proj.InSourceBuilds())
	assert.Equal(t, filepath.Join(dir, "out"), proj.BuildDir())
	assert.Equal(t, filepath.Join(dir, "modules"), proj.ImportsDir())
	assert.Equal(t, filepath.Join(dir, "toplevel.csv"), proj.TopImportsFilePath())

	suffix, err := proj.ImportModSuffix()
	require.NoError(t, err)
	assert.Equal(t, "_custom_suffix.owl", suffix)

	reasoner, err := proj.Reasoner()
	require.NoError(t, err)
	assert.Equal(t, "ELK", reasoner, "reasoner names are case-insensitive and canonicalized")

	types, err := proj.InferenceTypes()
	require.NoError(t, err)
	assert.Equal(t, []string{"subclasses", "types"}, types)

	assert.True(t, proj.AnnotateInferred())
	assert.True(t, proj.PreprocessInverses())
	assert.False(t, proj.AnnotateMerged())

	format, err := proj.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, "Turtle", format)
}

func TestInvalidSettings(t *testing.T) {
	proj := writeConfig(t, `
ontology:
  file: test.owl
reasoning:
  reasoner: fabber
`)
	_, err := proj.Reasoner()
	assert.ErrorIs(t, err, domain.ErrConfig)

	proj = writeConfig(t, `
ontology:
  file: test.owl
reasoning:
  inference_types: [subclasses, invalid type]
`)
	_, err = proj.InferenceTypes()
	assert.ErrorIs(t, err, domain.ErrConfig)

	proj = writeConfig(t, `
ontology:
  file: test.owl
output:
  format: csv
`)
	_, err = proj.OutputFormat()
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestIRIGeneration(t *testing.T) {
	proj := writeConfig(t, `
ontology:
  file: test.owl
iris:
  dev_base: https://example.org/dev/ontology
  release_base: https://example.org/release
`)

	devIRI, err := proj.GenerateDevIRI("build/test-raw.owl")
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/dev/ontology/build/test-raw.owl", devIRI)

	relIRI, err := proj.GenerateReleaseIRI("test.owl")
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/release/test.owl", relIRI)

	ontIRI, err := proj.ReleaseOntologyIRI()
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/release/test.owl", ontIRI)

	// Absolute paths are relativized against the project directory.
	devIRI, err = proj.GenerateDevIRI(filepath.Join(proj.ProjectDir(), "build"))
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/dev/ontology/build", devIRI)

	importsIRI, err := proj.ImportsDevBaseIRI()
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/dev/ontology/build", importsIRI)

	_, err = proj.GenerateDevIRI(filepath.Join(t.TempDir(), "outside.owl"))
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestIRIDefaults(t *testing.T) {
	proj := writeConfig(t, minimalConfig)

	devBase, err := proj.DevBaseIRI()
	require.NoError(t, err)
	assert.Equal(t, "file://"+filepath.ToSlash(proj.ProjectDir()), devBase)

	relBase, err := proj.ReleaseBaseIRI()
	require.NoError(t, err)
	assert.Equal(t, devBase, relBase, "release base falls back to the dev base")
}

func TestInvalidIRISetting(t *testing.T) {
	proj := writeConfig(t, `
ontology:
  file: test.owl
iris:
  dev_base: "not a valid iri"
`)
	_, err := proj.DevBaseIRI()
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestDefaultsOnlyProject(t *testing.T) {
	dir := t.TempDir()
	proj, err := config.Defaults(dir)
	require.NoError(t, err)

	assert.Empty(t, proj.ConfigFilePath())
	assert.Equal(t, filepath.Join(dir, "build"), proj.BuildDir())

	_, err = proj.OntologyFilePath()
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestResolver(t *testing.T) {
	dir := t.TempDir()
	confPath := filepath.Join(dir, config.DefaultFileName)
	require.NoError(t, os.WriteFile(confPath, []byte(minimalConfig), 0o644))

	var resolver config.Resolver
	proj, err := resolver.Resolve(confPath)
	require.NoError(t, err)
	assert.Equal(t, confPath, proj.ConfigFilePath())

	_, err = resolver.Resolve(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	proj, err = resolver.DefaultsFor(dir)
	require.NoError(t, err)
	assert.Empty(t, proj.ConfigFilePath())
}
