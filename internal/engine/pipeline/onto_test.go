package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports/mocks"
	"github.com/ontoforge/ontoforge/internal/engine/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newOntoStep builds an OntoStep on the standard project fixture.
func newOntoStep(t *testing.T) (*pipelineMocks, *config.Project, *pipeline.OntoStep) {
	t.Helper()
	deps, m := setupDeps(t)
	proj := standardProject(t)
	expectImportsRegistration(m, proj)

	imports, err := pipeline.NewImportsStep(deps, proj)
	require.NoError(t, err)
	step := pipeline.NewOntoStep(deps, proj, imports, true)
	return m, proj, step
}

func TestOntoStep_OutputPath(t *testing.T) {
	_, proj, step := newOntoStep(t)

	raw, err := step.OutputPath(true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(proj.BuildDir(), "test-raw.owl"), raw)

	stem, err := step.OutputPath(false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(proj.BuildDir(), "test.owl"), stem)
}

func TestOntoStep_OutputPathInSource(t *testing.T) {
	deps, m := setupDeps(t)
	proj := writeProject(t, map[string]string{
		"ontology.yaml": testConfig + "build:\n  insource_builds: true\n",
		"src/imports/imported_ontologies.csv": "Entities file,IRI\n" +
			",https://example.org/whole.owl\n",
	})
	m.mapper.EXPECT().SetCatalogPath(gomock.Any()).Return(nil)

	imports, err := pipeline.NewImportsStep(deps, proj)
	require.NoError(t, err)
	step := pipeline.NewOntoStep(deps, proj, imports, true)

	raw, err := step.OutputPath(true)
	require.NoError(t, err)
	assert.Equal(
		t, filepath.Join(proj.ProjectDir(), "test-raw.owl"), raw,
		"in-source builds write next to the configured ontology file",
	)
}

func TestOntoStep_BuildRequired(t *testing.T) {
	_, proj, step := newOntoStep(t)

	required, err := step.BuildRequired()
	require.NoError(t, err)
	assert.True(t, required, "the compiled ontology does not exist yet")

	output := filepath.Join(proj.BuildDir(), "test-raw.owl")
	require.NoError(t, os.MkdirAll(proj.BuildDir(), 0o755))
	require.NoError(t, os.WriteFile(output, []byte("compiled"), 0o644))

	required, err = step.BuildRequired()
	require.NoError(t, err)
	assert.False(t, required)

	// Touching any input invalidates the output.
	touch(t, filepath.Join(proj.EntitySourceDir(), "test_classes.csv"), 10)
	required, err = step.BuildRequired()
	require.NoError(t, err)
	assert.True(t, required)
}

func TestOntoStep_BuildRequiredMissingBase(t *testing.T) {
	deps, m := setupDeps(t)
	proj := writeProject(t, map[string]string{
		"ontology.yaml": testConfig,
		"src/imports/imported_ontologies.csv": "Entities file,IRI\n" +
			",https://example.org/whole.owl\n",
	})
	m.mapper.EXPECT().SetCatalogPath(gomock.Any()).Return(nil)

	imports, err := pipeline.NewImportsStep(deps, proj)
	require.NoError(t, err)
	step := pipeline.NewOntoStep(deps, proj, imports, true)

	_, err = step.BuildRequired()
	assert.Error(t, err, "a missing base ontology cannot be built against")
}

func TestOntoStep_MissingSourcePattern(t *testing.T) {
	deps, m := setupDeps(t)
	proj := writeProject(t, map[string]string{
		"ontology.yaml": "ontology:\n" +
			"  file: test.owl\n" +
			"  entity_source_files: [nonexistent.csv]\n",
		"src/test-base.owl": testBaseOntology,
		"src/imports/imported_ontologies.csv": "Entities file,IRI\n" +
			",https://example.org/whole.owl\n",
	})
	m.mapper.EXPECT().SetCatalogPath(gomock.Any()).Return(nil)

	imports, err := pipeline.NewImportsStep(deps, proj)
	require.NoError(t, err)
	step := pipeline.NewOntoStep(deps, proj, imports, true)

	_, err = step.BuildRequired()
	assert.Error(t, err, "a non-wildcard pattern matching nothing is an error")
}

func TestOntoStep_Build(t *testing.T) {
	m, proj, step := newOntoStep(t)

	output := filepath.Join(proj.BuildDir(), "test-raw.owl")
	basePath := filepath.Join(proj.ProjectDir(), "src", "test-base.owl")

	builder := mocks.NewMockOntologyBuilder(gomock.NewController(t))
	m.loader.EXPECT().NewBuilder(basePath).Return(builder, nil)

	var entities []domain.EntityDescription
	builder.EXPECT().AddEntity(gomock.Any()).
		DoAndReturn(func(desc domain.EntityDescription) error {
			entities = append(entities, desc)
			return nil
		}).Times(2)
	builder.EXPECT().Finish(gomock.Any(), true).Return(nil)

	ont := mocks.NewMockOntology(gomock.NewController(t))
	builder.EXPECT().Ontology().Return(ont)
	ont.EXPECT().AddImport("https://example.org/dev/build/bfo_test_import_module.owl").Return(nil)
	ont.EXPECT().AddImport("https://example.org/whole.owl").Return(nil)
	ont.EXPECT().SetOntologyID("https://example.org/dev/build/test-raw.owl", "").Return(nil)
	ont.EXPECT().SaveAs(gomock.Any(), output, "RDF/XML").Return(nil)

	_, err := step.Build(context.Background())
	require.NoError(t, err)

	require.Len(t, entities, 2)
	assert.Equal(t, domain.EntityClass, entities[0].Type)
	assert.Equal(t, "OBTO:0001", entities[0].Fields["id"])
	assert.Equal(t, "OBTO:0001", entities[1].Fields["parent"])
	assert.Equal(t, 3, entities[1].Row)
}

func TestOntoStep_BuildInvalidEntityType(t *testing.T) {
	deps, m := setupDeps(t)
	proj := writeProject(t, map[string]string{
		"ontology.yaml":     testConfig,
		"src/test-base.owl": testBaseOntology,
		"src/entities/test_classes.csv": "Type,ID\n" +
			"gizmo,OBTO:0001\n",
		"src/imports/imported_ontologies.csv": "Entities file,IRI\n" +
			",https://example.org/whole.owl\n",
	})
	m.mapper.EXPECT().SetCatalogPath(gomock.Any()).Return(nil)

	imports, err := pipeline.NewImportsStep(deps, proj)
	require.NoError(t, err)
	step := pipeline.NewOntoStep(deps, proj, imports, true)

	builder := mocks.NewMockOntologyBuilder(gomock.NewController(t))
	m.loader.EXPECT().NewBuilder(gomock.Any()).Return(builder, nil)

	_, err = step.Build(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTableRow)
}
