package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ontoforge/ontoforge/cmd/ontoforge/commands"
	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/adapters/logger"
	"github.com/ontoforge/ontoforge/internal/adapters/table"
	"github.com/ontoforge/ontoforge/internal/app"
	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports/mocks"
	"github.com/ontoforge/ontoforge/internal/engine/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type cliTestMocks struct {
	mapper     *mocks.MockIRIMapper
	scaffolder *mocks.MockProjectScaffolder
}

func setupCLI(t *testing.T) (*commands.CLI, cliTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := cliTestMocks{
		mapper:     mocks.NewMockIRIMapper(ctrl),
		scaffolder: mocks.NewMockProjectScaffolder(ctrl),
	}

	log := logger.New()
	deps := pipeline.Deps{
		Logger:     log,
		Tables:     table.NewOpener(),
		Ontologies: mocks.NewMockOntologyLoader(ctrl),
		Fetcher:    mocks.NewMockFetcher(ctrl),
		Mapper:     m.mapper,
		Finder:     mocks.NewMockEntityFinder(ctrl),
		Scaffolder: m.scaffolder,
		Stdin:      strings.NewReader(""),
		Stdout:     os.Stdout,
	}
	a := app.New(deps, config.Resolver{})
	return commands.New(a, log), m
}

func TestCLI_VersionCommand(t *testing.T) {
	cli, _ := setupCLI(t)
	cli.SetArgs([]string{"version"})
	assert.NoError(t, cli.Execute(context.Background()))
}

func TestCLI_UnknownTask(t *testing.T) {
	cli, _ := setupCLI(t)
	cli.SetArgs([]string{"frobnicate"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownBuildTarget)
}

func TestCLI_TooManyArguments(t *testing.T) {
	cli, _ := setupCLI(t)
	cli.SetArgs([]string{"make", "ontology", "extra"})
	assert.Error(t, cli.Execute(context.Background()))
}

func TestCLI_InitializeTask(t *testing.T) {
	cli, m := setupCLI(t)
	m.scaffolder.EXPECT().Create(".", "myontology.owl").Return(nil)

	cli.SetArgs([]string{"initialize", "myontology.owl"})
	assert.NoError(t, cli.Execute(context.Background()))
}

func TestCLI_DefaultTaskArguments(t *testing.T) {
	// The bare "initialize" falls back to the default task argument
	// "ontology", naming the new ontology file.
	cli, m := setupCLI(t)
	m.scaffolder.EXPECT().Create(".", "ontology").Return(nil)

	cli.SetArgs([]string{"initialize"})
	assert.NoError(t, cli.Execute(context.Background()))
}

func TestCLI_MakeImportsWithConfigFlag(t *testing.T) {
	cli, m := setupCLI(t)

	dir := t.TempDir()
	files := map[string]string{
		"ontology.yaml": "ontology:\n  file: test.owl\n",
		"src/imports/imported_ontologies.csv": "Entities file,IRI\n" +
			",https://example.org/whole.owl\n",
		"build/.keep": "",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	m.mapper.EXPECT().SetCatalogPath(gomock.Any()).Return(nil)

	cli.SetArgs([]string{"make", "imports", "-c", filepath.Join(dir, "ontology.yaml")})
	assert.NoError(t, cli.Execute(context.Background()))
}

func TestCLI_MissingConfigFile(t *testing.T) {
	cli, _ := setupCLI(t)
	cli.SetArgs([]string{"make", "ontology", "-c", filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, cli.Execute(context.Background()))
}
