package models

// ============================================================================
// Raw Cell Values
// ============================================================================

// RawKind identifies the underlying representation of a sampled cell value.
type RawKind string

const (
	RawKindString RawKind = "string"
	RawKindNull   RawKind = "null"
	RawKindBool   RawKind = "bool"
	RawKindNumber RawKind = "number"
)

// RawValue is a tagged union over the value shapes the engine samples from
// data files. CSV cells arrive as strings; the JSON path additionally carries
// native nulls, booleans and numbers. Keeping the tag explicit lets the type
// inferer apply its precedence rules without loose coercion.
type RawValue struct {
	Kind RawKind
	// Str holds the cell text for RawKindString, the original numeric
	// literal for RawKindNumber, and "true"/"false" for RawKindBool.
	// Empty for RawKindNull.
	Str string
	// Bool is set only for RawKindBool.
	Bool bool
}

// StringValue wraps a cell string (already trimmed by the parser).
func StringValue(s string) RawValue {
	return RawValue{Kind: RawKindString, Str: s}
}

// NullValue represents a JSON null or a missing object key.
func NullValue() RawValue {
	return RawValue{Kind: RawKindNull}
}

// BoolValue wraps a native JSON boolean.
func BoolValue(b bool) RawValue {
	v := RawValue{Kind: RawKindBool, Bool: b, Str: "false"}
	if b {
		v.Str = "true"
	}
	return v
}

// NumberValue wraps a native JSON number, keeping the original literal so
// int-vs-float detection can look for a decimal point in the source text.
func NumberValue(literal string) RawValue {
	return RawValue{Kind: RawKindNumber, Str: literal}
}

// StringForm returns the textual form of the value as it would appear in a
// rendered preview cell. Nulls render as the empty string, never "null".
func (v RawValue) StringForm() string {
	if v.Kind == RawKindNull {
		return ""
	}
	return v.Str
}

// IsMissing reports whether the value counts as missing for statistics:
// JSON null, the empty string, or the literal markers "NA" and "null".
func (v RawValue) IsMissing() bool {
	switch v.Kind {
	case RawKindNull:
		return true
	case RawKindString:
		return v.Str == "" || v.Str == "NA" || v.Str == "null"
	default:
		return false
	}
}
