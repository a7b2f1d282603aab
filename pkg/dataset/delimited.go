package dataset

import (
	"strings"

	"github.com/datalens-ai/datalens-engine/pkg/models"
)

// ParseDelimited shapes delimited text (CSV or TSV) into a table summary.
//
// Lines that are empty after trimming are discarded wherever they occur, not
// just at the ends. The first surviving line is the header. Data rows keep their
// native cell count even when it disagrees with the header; irregular rows
// are valid input and must never crash the parser.
func ParseDelimited(name, text string, delimiter rune) *models.TableSummary {
	summary := &models.TableSummary{
		Name:    name,
		Kind:    models.SummaryKindTabular,
		Columns: []models.ColumnInfo{},
		Preview: [][]models.RawValue{},
	}

	lines := make([]string, 0, 16)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return summary
	}

	headers := splitCells(lines[0], delimiter)
	dataRows := lines[1:]

	summary.ColumnCount = len(headers)
	summary.RowCount = len(dataRows)

	previewLen := min(models.PreviewRowLimit, len(dataRows))
	preview := make([][]models.RawValue, 0, previewLen)
	for _, line := range dataRows[:previewLen] {
		cells := splitCells(line, delimiter)
		row := make([]models.RawValue, len(cells))
		for i, cell := range cells {
			row[i] = models.StringValue(cell)
		}
		preview = append(preview, row)
	}

	summary.Preview = preview
	summary.Columns = summarizeColumns(headers, preview)
	summary.MissingValueTotal = missingValueTotal(summary.Columns)

	return summary
}

// splitCells splits a line on the delimiter and trims each field. Splitting
// an empty header line still yields one empty-named column, a documented
// quirk preserved for compatibility.
func splitCells(line string, delimiter rune) []string {
	fields := strings.Split(line, string(delimiter))
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}
