package prompts

import (
	"path/filepath"
	"strings"

	"github.com/jinzhu/inflection"
)

// SuggestEntityName derives a display name for the thing each row of a
// dataset represents, from the file's base name: extension stripped,
// separators spaced, singularized with proper English rules, first letter
// capitalized. "patient_records.csv" becomes "Patient record".
func SuggestEntityName(fileName string) string {
	name := filepath.Base(fileName)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	name = strings.Join(strings.Fields(name), " ")
	name = strings.ToLower(name)

	name = inflection.Singular(name)

	if len(name) > 0 {
		name = strings.ToUpper(name[:1]) + name[1:]
	}

	return name
}
