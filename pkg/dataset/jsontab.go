package dataset

import (
	"bytes"
	"encoding/json"

	"github.com/datalens-ai/datalens-engine/pkg/models"
)

// ParseJSON shapes JSON text into a table summary.
//
// An array of objects becomes tabular: the column set is the union of key
// names across the first sampled elements, in first-seen order. Valid JSON
// that is not an array is retained only as truncated pretty-printed text.
// Unparseable text never propagates an error; it downgrades to an
// unrecognized summary carrying the raw text.
func ParseJSON(name, text string) *models.TableSummary {
	var root json.RawMessage
	if err := json.Unmarshal([]byte(text), &root); err != nil {
		return &models.TableSummary{
			Name:        name,
			Kind:        models.SummaryKindUnrecognized,
			RawFallback: truncate(text, models.RawFallbackLimit),
		}
	}

	// Only arrays tabularize. The shape check must not rely on the slice
	// decode alone: unmarshaling the literal null into a slice succeeds as
	// a no-op, and a null document is a scalar, not an empty table.
	if trimmed := bytes.TrimSpace(root); len(trimmed) == 0 || trimmed[0] != '[' {
		return opaqueSummary(name, root)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(root, &elements); err != nil {
		return opaqueSummary(name, root)
	}

	summary := &models.TableSummary{
		Name:     name,
		Kind:     models.SummaryKindTabular,
		RowCount: len(elements),
		Columns:  []models.ColumnInfo{},
		Preview:  [][]models.RawValue{},
	}

	sampled := elements[:min(models.PreviewRowLimit, len(elements))]

	// Column union in first-seen order across the sampled elements. Only
	// objects contribute columns.
	headers := make([]string, 0)
	seen := make(map[string]struct{})
	fieldsByRow := make([]map[string]models.RawValue, len(sampled))
	for i, el := range sampled {
		fields, ok := orderedObjectFields(el)
		if !ok {
			continue
		}
		byKey := make(map[string]models.RawValue, len(fields))
		for _, f := range fields {
			if _, dup := seen[f.key]; !dup {
				seen[f.key] = struct{}{}
				headers = append(headers, f.key)
			}
			byKey[f.key] = f.value
		}
		fieldsByRow[i] = byKey
	}
	summary.ColumnCount = len(headers)

	// Project each sampled element into a row aligned to the column order.
	// Missing keys and non-object elements yield null cells.
	preview := make([][]models.RawValue, len(sampled))
	for i := range sampled {
		row := make([]models.RawValue, len(headers))
		for j, key := range headers {
			if v, ok := fieldsByRow[i][key]; ok {
				row[j] = v
			} else {
				row[j] = models.NullValue()
			}
		}
		preview[i] = row
	}

	summary.Preview = preview
	summary.Columns = summarizeColumns(headers, preview)
	summary.MissingValueTotal = missingValueTotal(summary.Columns)

	return summary
}

// opaqueSummary builds the summary for valid JSON that is not an array.
func opaqueSummary(name string, root json.RawMessage) *models.TableSummary {
	pretty := string(root)
	var decoded any
	if err := json.Unmarshal(root, &decoded); err == nil {
		if out, err := json.MarshalIndent(decoded, "", "  "); err == nil {
			pretty = string(out)
		}
	}
	return &models.TableSummary{
		Name:        name,
		Kind:        models.SummaryKindOpaqueObject,
		RawFallback: truncate(pretty, models.RawFallbackLimit),
	}
}

type objectField struct {
	key   string
	value models.RawValue
}

// orderedObjectFields decodes a JSON object keeping key order, which the
// standard map decoding would lose. Returns ok=false for non-object values.
func orderedObjectFields(raw json.RawMessage) ([]objectField, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}

	var fields []objectField
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, false
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, false
		}
		fields = append(fields, objectField{key: key, value: rawCell(val)})
	}
	return fields, true
}

// rawCell converts one JSON value literal into the engine's tagged cell
// representation. Nested objects and arrays are kept as their original JSON
// text, which downstream inference classifies as strings.
func rawCell(raw json.RawMessage) models.RawValue {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return models.NullValue()
	}
	switch trimmed[0] {
	case 'n':
		return models.NullValue()
	case 't':
		return models.BoolValue(true)
	case 'f':
		return models.BoolValue(false)
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return models.StringValue(string(trimmed))
		}
		return models.StringValue(s)
	case '{', '[':
		return models.StringValue(string(trimmed))
	default:
		return models.NumberValue(string(trimmed))
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
