package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports/mocks"
	"github.com/ontoforge/ontoforge/internal/engine/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestImportsStep_ModuleInfo(t *testing.T) {
	deps, m := setupDeps(t)
	proj := standardProject(t)
	expectImportsRegistration(m, proj)

	step, err := pipeline.NewImportsStep(deps, proj)
	require.NoError(t, err)

	infos, err := step.ImportsInfo()
	require.NoError(t, err)
	require.Len(t, infos, 2, "ignored rows do not contribute imports")

	assert.Equal(t, domain.ModuleInfo{
		Filename: filepath.Join(proj.BuildDir(), "bfo_test_import_module.owl"),
		IRI:      "https://example.org/dev/build/bfo_test_import_module.owl",
	}, infos[0])
	assert.Equal(t, domain.ModuleInfo{
		IRI: "https://example.org/whole.owl",
	}, infos[1], "direct imports keep the source IRI and have no module file")
}

func TestImportsStep_MissingTopImportsFile(t *testing.T) {
	deps, _ := setupDeps(t)
	proj := writeProject(t, map[string]string{"ontology.yaml": testConfig})

	_, err := pipeline.NewImportsStep(deps, proj)
	assert.Error(t, err)
}

func TestImportsStep_InvalidSourceIRI(t *testing.T) {
	deps, _ := setupDeps(t)
	proj := writeProject(t, map[string]string{
		"ontology.yaml": testConfig,
		"src/imports/imported_ontologies.csv": "Entities file,IRI\n" +
			",not-an-absolute-iri\n",
	})

	_, err := pipeline.NewImportsStep(deps, proj)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTableRow)
}

func TestImportsStep_MissingTermsFile(t *testing.T) {
	deps, _ := setupDeps(t)
	proj := writeProject(t, map[string]string{
		"ontology.yaml": testConfig,
		"src/imports/imported_ontologies.csv": "Entities file,IRI\n" +
			"nonexistent.csv,https://example.org/bfo.owl\n",
	})

	_, err := pipeline.NewImportsStep(deps, proj)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTableRow)
}

func TestImportsStep_BuildRequired(t *testing.T) {
	deps, m := setupDeps(t)
	proj := standardProject(t)
	expectImportsRegistration(m, proj)

	step, err := pipeline.NewImportsStep(deps, proj)
	require.NoError(t, err)

	required, err := step.BuildRequired()
	require.NoError(t, err)
	assert.True(t, required, "the module file does not exist yet")

	modPath := filepath.Join(proj.BuildDir(), "bfo_test_import_module.owl")
	require.NoError(t, os.MkdirAll(proj.BuildDir(), 0o755))
	require.NoError(t, os.WriteFile(modPath, []byte("module"), 0o644))

	required, err = step.BuildRequired()
	require.NoError(t, err)
	assert.False(t, required)

	// An updated terms file makes the module stale again.
	touch(t, filepath.Join(proj.ImportsSrcDir(), "bfo_terms.csv"), 10)
	required, err = step.BuildRequired()
	require.NoError(t, err)
	assert.True(t, required)
}

func TestImportsStep_Build(t *testing.T) {
	deps, m := setupDeps(t)
	proj := standardProject(t)
	expectImportsRegistration(m, proj)

	step, err := pipeline.NewImportsStep(deps, proj)
	require.NoError(t, err)

	const sourceIRI = "http://purl.obolibrary.org/obo/bfo.owl"
	modPath := filepath.Join(proj.BuildDir(), "bfo_test_import_module.owl")
	modIRI := "https://example.org/dev/build/bfo_test_import_module.owl"

	var cachedPath string
	m.fetcher.EXPECT().
		Resolve(gomock.Any(), sourceIRI).
		Return(sourceIRI, nil)
	m.fetcher.EXPECT().
		Download(gomock.Any(), sourceIRI, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest string) error {
			cachedPath = dest
			return os.WriteFile(dest, []byte(testBaseOntology), 0o644)
		})
	m.mapper.EXPECT().
		AddMapping(sourceIRI, gomock.Any()).
		Return(nil)

	module := mocks.NewMockOntology(gomock.NewController(t))
	m.loader.EXPECT().
		ExtractModule(
			gomock.Any(), gomock.Any(),
			[]domain.ImportTerm{
				{ID: "BFO:0000001", Method: "locality"},
				{ID: "BFO:0000002", Method: "locality"},
			},
			modIRI,
		).
		Return(module, nil)
	module.EXPECT().SaveAs(gomock.Any(), modPath, "RDF/XML").Return(nil)

	_, err = step.Build(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, cachedPath)
	assert.Equal(t, filepath.Join(proj.BuildDir(), "source_ontologies"), filepath.Dir(cachedPath))
	assert.FileExists(t, cachedPath, "the source ontology is cached under the build directory")
}

func TestImportsStep_BuildFollowsSourceRedirect(t *testing.T) {
	deps, m := setupDeps(t)
	proj := standardProject(t)
	expectImportsRegistration(m, proj)

	step, err := pipeline.NewImportsStep(deps, proj)
	require.NoError(t, err)

	const sourceIRI = "http://purl.obolibrary.org/obo/bfo.owl"
	const finalIRI = "http://purl.obolibrary.org/obo/bfo/2026-01-01/bfo.owl"

	m.fetcher.EXPECT().
		Resolve(gomock.Any(), sourceIRI).
		Return(finalIRI, nil)
	m.fetcher.EXPECT().
		Download(gomock.Any(), finalIRI, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest string) error {
			return os.WriteFile(dest, []byte(testBaseOntology), 0o644)
		})
	// The cached copy serves requests for the declared IRI and the
	// redirected one.
	m.mapper.EXPECT().AddMapping(sourceIRI, gomock.Any()).Return(nil)
	m.mapper.EXPECT().AddMapping(finalIRI, gomock.Any()).Return(nil)

	module := mocks.NewMockOntology(gomock.NewController(t))
	m.loader.EXPECT().
		ExtractModule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(module, nil)
	module.EXPECT().SaveAs(gomock.Any(), gomock.Any(), "RDF/XML").Return(nil)

	_, err = step.Build(context.Background())
	require.NoError(t, err)
}
