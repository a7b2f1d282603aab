package models

import "slices"

// ============================================================================
// Inferred Column Types
// ============================================================================

// InferredType is the heuristic classification of a column's sampled values.
type InferredType string

const (
	InferredTypeInt      InferredType = "int"
	InferredTypeFloat    InferredType = "float"
	InferredTypeBool     InferredType = "bool"
	InferredTypeDatetime InferredType = "datetime"
	InferredTypeString   InferredType = "string"
	// InferredTypeNull marks a column whose sampled values were all missing.
	InferredTypeNull InferredType = "null"
)

// ValidInferredTypes contains all valid inferred type values.
var ValidInferredTypes = []InferredType{
	InferredTypeInt,
	InferredTypeFloat,
	InferredTypeBool,
	InferredTypeDatetime,
	InferredTypeString,
	InferredTypeNull,
}

// IsValidInferredType checks if the given type is valid.
func IsValidInferredType(t InferredType) bool {
	return slices.Contains(ValidInferredTypes, t)
}

// ============================================================================
// Summary Kinds
// ============================================================================

// SummaryKind identifies how a file's content was shaped.
type SummaryKind string

const (
	// SummaryKindTabular means the content was shaped into rows and columns.
	SummaryKindTabular SummaryKind = "tabular"
	// SummaryKindOpaqueObject means the content was valid JSON but not an
	// array, so only truncated raw text is retained.
	SummaryKindOpaqueObject SummaryKind = "opaqueObject"
	// SummaryKindUnrecognized means the content could not be parsed at all.
	SummaryKindUnrecognized SummaryKind = "unrecognized"
)

// ============================================================================
// Table Summary
// ============================================================================

// PreviewRowLimit caps how many data rows are sampled for display and for
// type/statistics inference. Heavier per-column work is bounded by this cap
// regardless of the file's full row count.
const PreviewRowLimit = 10

// RawFallbackLimit caps how much original text is retained for content that
// could not be shaped into a table.
const RawFallbackLimit = 1000

// ColumnInfo holds the inferred type and preview-bounded statistics for a
// single column.
type ColumnInfo struct {
	Name string `json:"name"`
	// InferredType is computed from non-missing sampled values only. If every
	// sampled value was missing, it is InferredTypeNull.
	InferredType InferredType `json:"inferred_type"`
	// NullCount counts sampled values that were empty, "NA", "null" or JSON null.
	NullCount int `json:"null_count"`
	// DistinctCount counts distinct sampled values, with all missing-value
	// markers collapsed into a single distinct value.
	DistinctCount int `json:"distinct_count"`
}

// TableSummary is the engine's structured result for one analyzed file.
// Summaries are owned by the result cache; callers treat them as read-only.
type TableSummary struct {
	Name string      `json:"name"`
	Kind SummaryKind `json:"kind"`

	// RowCount is the full parsed data row count, not the preview length.
	RowCount    int `json:"row_count"`
	ColumnCount int `json:"column_count"`

	// Columns is ordered by header order; len(Columns) == ColumnCount.
	Columns []ColumnInfo `json:"columns,omitempty"`

	// Preview holds up to PreviewRowLimit sampled rows. Rows keep their
	// native length; irregular delimited rows are not padded or truncated.
	Preview [][]RawValue `json:"preview,omitempty"`

	// MissingValueTotal is the sum of NullCount across columns.
	MissingValueTotal int `json:"missing_value_total"`

	// RawFallback retains the original text, truncated to RawFallbackLimit,
	// only when Kind is not SummaryKindTabular.
	RawFallback string `json:"raw_fallback,omitempty"`
}
