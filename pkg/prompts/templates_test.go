package prompts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalens-ai/datalens-engine/pkg/models"
)

func sampleSummary() *models.TableSummary {
	return &models.TableSummary{
		Name:        "patient_records.csv",
		Kind:        models.SummaryKindTabular,
		RowCount:    1,
		ColumnCount: 1,
		Columns: []models.ColumnInfo{
			{Name: "bp", InferredType: models.InferredTypeInt},
		},
		Preview: [][]models.RawValue{
			{models.StringValue("120")},
		},
	}
}

func TestLoadTemplates_MissingFileUsesDefaults(t *testing.T) {
	templates, err := LoadTemplates(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplates(), templates)
}

func TestLoadTemplates_EmptyPathUsesDefaults(t *testing.T) {
	templates, err := LoadTemplates("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplates(), templates)
}

func TestLoadTemplates_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("statistical_test: custom stats instructions\n"), 0o644))

	templates, err := LoadTemplates(path)
	require.NoError(t, err)
	assert.Equal(t, "custom stats instructions", templates.StatisticalTest)
	assert.Equal(t, DefaultTemplates().Visualization, templates.Visualization)
}

func TestLoadTemplates_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("statistical_test: [unclosed"), 0o644))

	_, err := LoadTemplates(path)
	assert.Error(t, err)
}

func TestBuildStatisticalTestPrompt(t *testing.T) {
	prompt := DefaultTemplates().BuildStatisticalTestPrompt(sampleSummary())

	assert.Contains(t, prompt, "# Statistical Test Suggestions")
	assert.Contains(t, prompt, "## Data Context")
	assert.Contains(t, prompt, "Data: patient_records.csv")
	assert.Contains(t, prompt, "Each row appears to describe: Patient record")
	assert.Contains(t, prompt, "- bp (int)")
}

func TestBuildVisualizationPrompt(t *testing.T) {
	code := "data.boxplot(column='bp')"
	prompt := DefaultTemplates().BuildVisualizationPrompt(sampleSummary(), code)

	assert.Contains(t, prompt, "# Improve This Plot")
	assert.Contains(t, prompt, "## Selected Code")
	assert.Contains(t, prompt, code)
	assert.Contains(t, prompt, "Data: patient_records.csv")
}

func TestBuildVisualizationPrompt_NoCodeSection(t *testing.T) {
	prompt := DefaultTemplates().BuildVisualizationPrompt(sampleSummary(), "")
	assert.NotContains(t, prompt, "## Selected Code")
}

func TestBuildPrompts_Deterministic(t *testing.T) {
	summary := sampleSummary()
	templates := DefaultTemplates()

	assert.Equal(t,
		templates.BuildStatisticalTestPrompt(summary),
		templates.BuildStatisticalTestPrompt(summary))
}
