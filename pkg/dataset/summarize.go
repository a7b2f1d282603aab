package dataset

import "github.com/datalens-ai/datalens-engine/pkg/models"

// missingKey is the shared distinct-set key for all missing-value markers.
// Empty string, "NA", "null" and JSON null collapse to one distinct value.
const missingKey = "\x00missing"

// SummarizeColumn combines type inference with null and distinct counting
// over one column's sampled values. Counts are preview-bounded: values come
// from the sampled rows, not the full file.
func SummarizeColumn(name string, values []models.RawValue) models.ColumnInfo {
	info := models.ColumnInfo{
		Name:         name,
		InferredType: InferColumnType(values),
	}

	distinct := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v.IsMissing() {
			info.NullCount++
			distinct[missingKey] = struct{}{}
			continue
		}
		// Prefix with the kind so the string "1" and the number 1 stay
		// distinct values.
		distinct[string(v.Kind)+":"+v.StringForm()] = struct{}{}
	}
	info.DistinctCount = len(distinct)

	return info
}

// summarizeColumns runs per-column summarization across a preview, gathering
// the column slice for each header index. Irregular rows simply contribute no
// value for indexes beyond their length.
func summarizeColumns(headers []string, preview [][]models.RawValue) []models.ColumnInfo {
	columns := make([]models.ColumnInfo, 0, len(headers))
	for i, name := range headers {
		values := make([]models.RawValue, 0, len(preview))
		for _, row := range preview {
			if i < len(row) {
				values = append(values, row[i])
			}
		}
		columns = append(columns, SummarizeColumn(name, values))
	}
	return columns
}

// missingValueTotal sums NullCount across columns.
func missingValueTotal(columns []models.ColumnInfo) int {
	total := 0
	for _, c := range columns {
		total += c.NullCount
	}
	return total
}
