package dataset

import (
	"path/filepath"
	"strings"

	"github.com/datalens-ai/datalens-engine/pkg/models"
)

// ClassifyFileName maps a file name to a content-parsing strategy based on
// its extension. Only the name is needed, never the content. The check is
// case-insensitive and names with no dot separator are safe.
func ClassifyFileName(fileName string) models.FileFormat {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return models.FileFormatCSV
	case ".tsv":
		return models.FileFormatTSV
	case ".json":
		return models.FileFormatJSON
	default:
		return models.FileFormatUnsupported
	}
}

// IsRecognizedDataFile reports whether the engine knows how to shape the
// named file. Callers use this to decide whether to invoke analysis at all.
func IsRecognizedDataFile(fileName string) bool {
	return ClassifyFileName(fileName) != models.FileFormatUnsupported
}
