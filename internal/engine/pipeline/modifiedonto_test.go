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

func TestModifiedOntoStep_OutputPath(t *testing.T) {
	deps, m := setupDeps(t)
	proj := standardProject(t)
	expectImportsRegistration(m, proj)

	imports, err := pipeline.NewImportsStep(deps, proj)
	require.NoError(t, err)
	onto := pipeline.NewOntoStep(deps, proj, imports, true)

	cases := []struct {
		merge, reason bool
		want          string
	}{
		{true, false, "test-merged.owl"},
		{false, true, "test-reasoned.owl"},
		{true, true, "test-merged-reasoned.owl"},
	}
	for _, tc := range cases {
		step := pipeline.NewModifiedOntoStep(deps, proj, onto, tc.merge, tc.reason)
		out, err := step.OutputPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(proj.BuildDir(), tc.want), out)
	}
}

func TestModifiedOntoStep_NoModificationNeverRequired(t *testing.T) {
	deps, m := setupDeps(t)
	proj := standardProject(t)
	expectImportsRegistration(m, proj)

	imports, err := pipeline.NewImportsStep(deps, proj)
	require.NoError(t, err)
	onto := pipeline.NewOntoStep(deps, proj, imports, true)
	step := pipeline.NewModifiedOntoStep(deps, proj, onto, false, false)

	required, err := step.BuildRequired()
	require.NoError(t, err)
	assert.False(t, required)
}

func TestModifiedOntoStep_BuildRequired(t *testing.T) {
	deps, m := setupDeps(t)
	proj := standardProject(t)
	expectImportsRegistration(m, proj)

	imports, err := pipeline.NewImportsStep(deps, proj)
	require.NoError(t, err)
	onto := pipeline.NewOntoStep(deps, proj, imports, true)
	step := pipeline.NewModifiedOntoStep(deps, proj, onto, true, false)

	required, err := step.BuildRequired()
	require.NoError(t, err)
	assert.True(t, required, "the merged ontology does not exist yet")

	require.NoError(t, os.MkdirAll(proj.BuildDir(), 0o755))
	rawPath := filepath.Join(proj.BuildDir(), "test-raw.owl")
	mergedPath := filepath.Join(proj.BuildDir(), "test-merged.owl")
	require.NoError(t, os.WriteFile(rawPath, []byte("raw"), 0o644))
	require.NoError(t, os.WriteFile(mergedPath, []byte("merged"), 0o644))

	required, err = step.BuildRequired()
	require.NoError(t, err)
	assert.False(t, required)

	touch(t, rawPath, 10)
	required, err = step.BuildRequired()
	require.NoError(t, err)
	assert.True(t, required, "a newer raw ontology invalidates the merged one")
}

func TestModifiedOntoStep_Build(t *testing.T) {
	deps, m := setupDeps(t)
	proj := standardProject(t)
	expectImportsRegistration(m, proj)

	imports, err := pipeline.NewImportsStep(deps, proj)
	require.NoError(t, err)
	onto := pipeline.NewOntoStep(deps, proj, imports, true)
	step := pipeline.NewModifiedOntoStep(deps, proj, onto, true, true)

	require.NoError(t, os.MkdirAll(proj.BuildDir(), 0o755))
	rawPath := filepath.Join(proj.BuildDir(), "test-raw.owl")
	require.NoError(t, os.WriteFile(rawPath, []byte("raw"), 0o644))
	output := filepath.Join(proj.BuildDir(), "test-merged-reasoned.owl")

	ont := mocks.NewMockOntology(gomock.NewController(t))
	m.loader.EXPECT().Load(rawPath).Return(ont, nil)
	ont.EXPECT().Imports(gomock.Any()).Return([]string{
		"https://example.org/dev/build/bfo_test_import_module.owl",
		"https://example.org/whole.owl",
	}, nil)
	ont.EXPECT().
		MergeImport("https://example.org/dev/build/bfo_test_import_module.owl", true).
		Return(nil)
	ont.EXPECT().MergeImport("https://example.org/whole.owl", true).Return(nil)
	ont.EXPECT().
		AddInferredAxioms("HermiT", domain.InferenceSpec{
			Types: domain.DefaultInferenceTypes,
		}).
		Return(nil)
	ont.EXPECT().
		SetOntologyID("https://example.org/dev/build/test-merged-reasoned.owl", "").
		Return(nil)
	ont.EXPECT().SaveAs(gomock.Any(), output, "RDF/XML").Return(nil)

	_, err = step.Build(context.Background())
	require.NoError(t, err)
}

func TestModifiedOntoStep_BuildMissingRaw(t *testing.T) {
	deps, m := setupDeps(t)
	proj := standardProject(t)
	expectImportsRegistration(m, proj)

	imports, err := pipeline.NewImportsStep(deps, proj)
	require.NoError(t, err)
	onto := pipeline.NewOntoStep(deps, proj, imports, true)
	step := pipeline.NewModifiedOntoStep(deps, proj, onto, true, false)

	_, err = step.Build(context.Background())
	assert.Error(t, err)
}
