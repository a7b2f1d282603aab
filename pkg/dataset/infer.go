package dataset

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/datalens-ai/datalens-engine/pkg/models"
)

// datePatterns are the fixed datetime shapes the inferer recognizes. The
// first two require a full match; the ISO 8601 form is matched as a prefix so
// timestamps with zone suffixes still count.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`),
}

// InferColumnType classifies a column's sampled values into exactly one
// inferred type. Checks run in fixed precedence order; later checks are more
// permissive and would misclassify if reordered. In particular the boolean
// check must precede the numeric one, since numeric coercion of a boolean
// would otherwise turn all-boolean columns into integers.
//
// The datetime check is existential where the others are universal: a single
// date-shaped value flips the whole column to datetime. That asymmetry is
// longstanding observed behavior and downstream consumers rely on it, so it
// stays.
func InferColumnType(values []models.RawValue) models.InferredType {
	present := make([]models.RawValue, 0, len(values))
	for _, v := range values {
		if v.Kind == models.RawKindNull {
			continue
		}
		if v.Kind == models.RawKindString && v.Str == "" {
			continue
		}
		present = append(present, v)
	}
	if len(present) == 0 {
		return models.InferredTypeNull
	}

	if allBoolean(present) {
		return models.InferredTypeBool
	}

	if numeric, hasDecimal := allNumeric(present); numeric {
		if hasDecimal {
			return models.InferredTypeFloat
		}
		return models.InferredTypeInt
	}

	for _, v := range present {
		if matchesDatePattern(v.StringForm()) {
			return models.InferredTypeDatetime
		}
	}

	return models.InferredTypeString
}

// allBoolean reports whether every value is a native boolean or a string
// whose lowercase form is exactly "true" or "false".
func allBoolean(values []models.RawValue) bool {
	for _, v := range values {
		switch v.Kind {
		case models.RawKindBool:
			// native booleans always qualify
		case models.RawKindString:
			lower := strings.ToLower(v.Str)
			if lower != "true" && lower != "false" {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// allNumeric reports whether every value converts to a finite number, and
// whether any value's source text contains a decimal point. Native booleans
// convert (true is 1), matching the loose numeric coercion of the original
// heuristic; they never contribute a decimal point.
func allNumeric(values []models.RawValue) (numeric bool, hasDecimal bool) {
	for _, v := range values {
		switch v.Kind {
		case models.RawKindNumber:
			if strings.Contains(v.Str, ".") {
				hasDecimal = true
			}
		case models.RawKindBool:
			// coerces to 0 or 1
		case models.RawKindString:
			f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return false, false
			}
			if strings.Contains(v.Str, ".") {
				hasDecimal = true
			}
		default:
			return false, false
		}
	}
	return true, hasDecimal
}

func matchesDatePattern(s string) bool {
	for _, p := range datePatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
