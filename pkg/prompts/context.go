package prompts

import (
	"fmt"
	"strings"

	"github.com/datalens-ai/datalens-engine/pkg/models"
)

// FormatForPrompt renders a table summary into the plain-text block embedded
// in downstream assistant prompts. Section order is fixed: prompt templates
// rely on it, and identical summaries must always yield byte-identical
// output.
func FormatForPrompt(summary *models.TableSummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Data: %s\n", summary.Name))

	if summary.Kind != models.SummaryKindTabular {
		b.WriteString(summary.RawFallback)
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Shape: %d rows × %d columns\n", summary.RowCount, summary.ColumnCount))
	b.WriteString("\n")
	b.WriteString("Columns:\n")
	for _, col := range summary.Columns {
		b.WriteString(fmt.Sprintf("- %s (%s)", col.Name, col.InferredType))
		if col.NullCount > 0 {
			b.WriteString(fmt.Sprintf(" - %d missing values", col.NullCount))
		}
		b.WriteString("\n")
	}

	if len(summary.Preview) > 0 {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Preview (first %d rows):\n", len(summary.Preview)))

		names := make([]string, len(summary.Columns))
		separators := make([]string, len(summary.Columns))
		for i, col := range summary.Columns {
			names[i] = col.Name
			separators[i] = "---"
		}
		b.WriteString(strings.Join(names, " | "))
		b.WriteString("\n")
		b.WriteString(strings.Join(separators, " | "))
		b.WriteString("\n")

		for _, row := range summary.Preview {
			cells := make([]string, len(row))
			for i, cell := range row {
				cells[i] = cell.StringForm()
			}
			b.WriteString(strings.Join(cells, " | "))
			b.WriteString("\n")
		}
	}

	return b.String()
}
