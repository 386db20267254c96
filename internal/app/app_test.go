package app_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/adapters/table"
	"github.com/ontoforge/ontoforge/internal/app"
	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports/mocks"
	"github.com/ontoforge/ontoforge/internal/engine/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type appTestMocks struct {
	logger     *mocks.MockLogger
	loader     *mocks.MockOntologyLoader
	fetcher    *mocks.MockFetcher
	mapper     *mocks.MockIRIMapper
	finder     *mocks.MockEntityFinder
	scaffolder *mocks.MockProjectScaffolder
}

func setupApp(t *testing.T) (*app.App, appTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appTestMocks{
		logger:     mocks.NewMockLogger(ctrl),
		loader:     mocks.NewMockOntologyLoader(ctrl),
		fetcher:    mocks.NewMockFetcher(ctrl),
		mapper:     mocks.NewMockIRIMapper(ctrl),
		finder:     mocks.NewMockEntityFinder(ctrl),
		scaffolder: mocks.NewMockProjectScaffolder(ctrl),
	}

	deps := pipeline.Deps{
		Logger:     m.logger,
		Tables:     table.NewOpener(),
		Ontologies: m.loader,
		Fetcher:    m.fetcher,
		Mapper:     m.mapper,
		Finder:     m.finder,
		Scaffolder: m.scaffolder,
		Stdin:      strings.NewReader(""),
		Stdout:     os.Stdout,
	}
	return app.New(deps, config.Resolver{}), m
}

// writeImportsProject lays out a minimal project whose only import is a
// direct one, so the imports target has no modules to compile.
func writeImportsProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"ontology.yaml": "ontology:\n  file: test.owl\n" +
			"iris:\n  dev_base: https://example.org/dev\n",
		"src/imports/imported_ontologies.csv": "Entities file,IRI\n" +
			",https://example.org/whole.owl\n",
		"build/.keep": "",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestApp_TaskNames(t *testing.T) {
	a, _ := setupApp(t)

	names := a.TaskNames()
	for _, want := range []string{
		"initialize", "make", "update_base", "error_check", "inference_pipeline",
		"find_entities", "fe", "ipl",
	} {
		assert.Contains(t, names, want)
	}

	assert.Equal(t, []string{"imports", "ontology", "release"}, a.TaskArgNames("make"))
}

func TestApp_RunUnknownTask(t *testing.T) {
	a, _ := setupApp(t)

	err := a.Run(context.Background(), &domain.Options{Task: "frobnicate"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownBuildTarget)
}

func TestApp_RunInitialize(t *testing.T) {
	a, m := setupApp(t)
	m.scaffolder.EXPECT().Create(".", "myontology.owl").Return(nil)

	err := a.Run(context.Background(), &domain.Options{
		Task:    "initialize",
		TaskArg: domain.Some("myontology.owl"),
	})
	require.NoError(t, err)
}

func TestApp_RunSkipsUpToDateTarget(t *testing.T) {
	a, m := setupApp(t)
	dir := writeImportsProject(t)

	m.mapper.EXPECT().SetCatalogPath(gomock.Any()).Return(nil)
	m.logger.EXPECT().Info("All import modules are already up to date.")

	err := a.Run(context.Background(), &domain.Options{
		Task:       "make",
		TaskArg:    domain.Some("imports"),
		ConfigFile: filepath.Join(dir, "ontology.yaml"),
	})
	require.NoError(t, err)
}

func TestApp_RunMissingConfig(t *testing.T) {
	a, _ := setupApp(t)

	err := a.Run(context.Background(), &domain.Options{
		Task:       "make",
		TaskArg:    domain.Some("imports"),
		ConfigFile: filepath.Join(t.TempDir(), "nope.yaml"),
	})
	assert.Error(t, err)
}
