package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestStatisticalTests_ReturnsPrompt(t *testing.T) {
	s := newTestServer(t, nil)
	path := writeTempCSV(t)

	text, isErr := callTool(t, s, "suggest_statistical_tests", map[string]any{"path": path})

	assert.False(t, isErr)
	assert.Contains(t, text, "# Statistical Test Suggestions")
	assert.Contains(t, text, "Data: patients.csv")
}

func TestSuggestStatisticalTests_SendForwardsToAssistant(t *testing.T) {
	asst := &stubAssistant{reply: "use a t-test"}
	s := newTestServer(t, asst)
	path := writeTempCSV(t)

	text, isErr := callTool(t, s, "suggest_statistical_tests",
		map[string]any{"path": path, "send": true})

	assert.False(t, isErr)
	assert.Equal(t, "use a t-test", text)
	require.Len(t, asst.prompts, 1)
	assert.Contains(t, asst.prompts[0], "Data: patients.csv")
}

func TestSuggestStatisticalTests_SendWithoutAssistant(t *testing.T) {
	s := newTestServer(t, nil)
	path := writeTempCSV(t)

	text, isErr := callTool(t, s, "suggest_statistical_tests",
		map[string]any{"path": path, "send": true})

	assert.True(t, isErr)
	assert.Contains(t, text, "no_assistant")
}

func TestImprovePlot_IncludesSelectedCode(t *testing.T) {
	s := newTestServer(t, nil)
	path := writeTempCSV(t)
	code := "data.boxplot(column='age')"

	text, isErr := callTool(t, s, "improve_plot",
		map[string]any{"path": path, "code": code})

	assert.False(t, isErr)
	assert.Contains(t, text, "# Improve This Plot")
	assert.Contains(t, text, code)
	assert.Contains(t, text, "- age (int)")
}

func TestImprovePlot_UnsupportedFile(t *testing.T) {
	s := newTestServer(t, nil)

	text, isErr := callTool(t, s, "improve_plot", map[string]any{"path": "plot.py"})

	assert.True(t, isErr)
	assert.Contains(t, text, "unsupported_format")
}
