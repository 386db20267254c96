package pipeline_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/adapters/table"
	"github.com/ontoforge/ontoforge/internal/core/ports/mocks"
	"github.com/ontoforge/ontoforge/internal/engine/pipeline"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// pipelineMocks bundles the mocked collaborators behind a pipeline.Deps.
// Tables is backed by the real CSV reader so tests exercise actual input
// files.
type pipelineMocks struct {
	loader     *mocks.MockOntologyLoader
	fetcher    *mocks.MockFetcher
	mapper     *mocks.MockIRIMapper
	finder     *mocks.MockEntityFinder
	scaffolder *mocks.MockProjectScaffolder
	stdout     *bytes.Buffer
}

func setupDeps(t *testing.T) (pipeline.Deps, *pipelineMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &pipelineMocks{
		loader:     mocks.NewMockOntologyLoader(ctrl),
		fetcher:    mocks.NewMockFetcher(ctrl),
		mapper:     mocks.NewMockIRIMapper(ctrl),
		finder:     mocks.NewMockEntityFinder(ctrl),
		scaffolder: mocks.NewMockProjectScaffolder(ctrl),
		stdout:     &bytes.Buffer{},
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	deps := pipeline.Deps{
		Logger:     logger,
		Tables:     table.NewOpener(),
		Ontologies: m.loader,
		Fetcher:    m.fetcher,
		Mapper:     m.mapper,
		Finder:     m.finder,
		Scaffolder: m.scaffolder,
		Stdin:      strings.NewReader(""),
		Stdout:     m.stdout,
	}
	return deps, m
}

// writeProject lays out a project directory from relative file paths and
// loads its configuration.
func writeProject(t *testing.T, files map[string]string) *config.Project {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	proj, err := config.Load(filepath.Join(dir, config.DefaultFileName))
	require.NoError(t, err)
	return proj
}

const testConfig = `
ontology:
  file: test.owl
  entity_source_files: [test_classes.csv]
iris:
  dev_base: https://example.org/dev
  release_base: https://example.org/release
`

const testBaseOntology = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
    <owl:Ontology rdf:about="https://example.org/dev/test.owl"/>
</rdf:RDF>
`

// standardProject is the fixture most step tests start from: one entity
// terms file and one import module plus one direct import.
func standardProject(t *testing.T) *config.Project {
	t.Helper()
	return writeProject(t, map[string]string{
		"ontology.yaml":     testConfig,
		"src/test-base.owl": testBaseOntology,
		"src/entities/test_classes.csv": "Type,ID,Parent\n" +
			"class,OBTO:0001,\n" +
			"class,OBTO:0002,OBTO:0001\n",
		"src/imports/imported_ontologies.csv": "Entities file,IRI,Ignore\n" +
			"bfo_terms.csv,http://purl.obolibrary.org/obo/bfo.owl,\n" +
			",https://example.org/whole.owl,\n" +
			"skipped.csv,https://example.org/skipped.owl,Y\n",
		"src/imports/bfo_terms.csv": "ID\nBFO:0000001\nBFO:0000002\n",
	})
}

// expectImportsRegistration satisfies the IRI mapping calls NewImportsStep
// makes for the standard project.
func expectImportsRegistration(m *pipelineMocks, proj *config.Project) {
	m.mapper.EXPECT().
		SetCatalogPath(filepath.Join(proj.BuildDir(), "catalog-v001.xml")).
		Return(nil)
	m.mapper.EXPECT().
		AddMapping(
			"https://example.org/dev/build/bfo_test_import_module.owl",
			"file://"+filepath.ToSlash(
				filepath.Join(proj.BuildDir(), "bfo_test_import_module.owl"),
			),
		).
		Return(nil)
}

// touch sets a file's modification time.
func touch(t *testing.T, path string, offsetSeconds int) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	newTime := info.ModTime().Add(
		time.Duration(offsetSeconds) * time.Second,
	)
	require.NoError(t, os.Chtimes(path, newTime, newTime))
}
