package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/datalens-ai/datalens-engine/pkg/apperrors"
	"github.com/datalens-ai/datalens-engine/pkg/models"
)

func TestEngineAnalyze_CachesByPath(t *testing.T) {
	eng := NewEngine(zap.NewNop())

	first, err := eng.Analyze("/data/sales.csv", "a,b\n1,2\n")
	require.NoError(t, err)
	assert.Equal(t, 1, first.RowCount)

	// Same path returns the cached summary even if the content changed;
	// staleness is resolved only by an explicit cache clear.
	second, err := eng.Analyze("/data/sales.csv", "a,b\n1,2\n3,4\n")
	require.NoError(t, err)
	assert.Same(t, first, second)

	eng.ClearCache()
	third, err := eng.Analyze("/data/sales.csv", "a,b\n1,2\n3,4\n")
	require.NoError(t, err)
	assert.Equal(t, 2, third.RowCount)
}

func TestEngineAnalyze_EmptyFileNameIsContractViolation(t *testing.T) {
	eng := NewEngine(zap.NewNop())

	_, err := eng.Analyze("", "a,b\n")
	assert.ErrorIs(t, err, apperrors.ErrEmptyFileName)
}

func TestEngineAnalyzeContent_DispatchesByExtension(t *testing.T) {
	eng := NewEngine(zap.NewNop())

	csv := eng.AnalyzeContent("x.csv", "a,b\n1,2\n")
	assert.Equal(t, models.SummaryKindTabular, csv.Kind)
	assert.Equal(t, 2, csv.ColumnCount)

	tsv := eng.AnalyzeContent("x.tsv", "a\tb\n1\t2\n")
	assert.Equal(t, 2, tsv.ColumnCount)

	jsonSummary := eng.AnalyzeContent("x.json", `[{"a":1}]`)
	assert.Equal(t, models.SummaryKindTabular, jsonSummary.Kind)

	unknown := eng.AnalyzeContent("x.txt", "whatever")
	assert.Equal(t, models.SummaryKindUnrecognized, unknown.Kind)
	assert.Equal(t, "whatever", unknown.RawFallback)
}

func TestEngineAnalyzeContent_UsesBaseName(t *testing.T) {
	eng := NewEngine(zap.NewNop())

	summary := eng.AnalyzeContent("/some/deep/path/sales.csv", "a\n1\n")
	assert.Equal(t, "sales.csv", summary.Name)
}
