package dataset

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/datalens-ai/datalens-engine/pkg/apperrors"
	"github.com/datalens-ai/datalens-engine/pkg/models"
)

// Engine shapes data file content into table summaries for prompt building.
// All analysis is synchronous and in-memory; the engine never reads files
// itself, it receives already-read text. The only mutable state is the result
// cache, which is safe for concurrent callers.
type Engine interface {
	// Analyze returns the summary for the named file, serving repeated
	// requests for the same path from the cache. An empty file name is a
	// caller contract violation and returns an error; malformed content
	// never does.
	Analyze(fileName, content string) (*models.TableSummary, error)

	// AnalyzeContent shapes content without touching the cache.
	AnalyzeContent(fileName, content string) *models.TableSummary

	// ClearCache drops all memoized summaries.
	ClearCache()
}

type engine struct {
	cache  ResultCache
	logger *zap.Logger
}

// NewEngine creates a data context engine with its own result cache.
func NewEngine(logger *zap.Logger) Engine {
	return &engine{
		cache:  NewResultCache(),
		logger: logger.Named("dataset-engine"),
	}
}

func (e *engine) Analyze(fileName, content string) (*models.TableSummary, error) {
	if fileName == "" {
		return nil, apperrors.ErrEmptyFileName
	}

	if cached, ok := e.cache.Get(fileName); ok {
		e.logger.Debug("Serving data context from cache",
			zap.String("file", fileName))
		return cached, nil
	}

	summary := e.AnalyzeContent(fileName, content)
	e.cache.Set(fileName, summary)

	e.logger.Info("Analyzed data file",
		zap.String("file", fileName),
		zap.String("kind", string(summary.Kind)),
		zap.Int("rows", summary.RowCount),
		zap.Int("columns", summary.ColumnCount),
		zap.Int("missing_values", summary.MissingValueTotal))

	return summary, nil
}

func (e *engine) AnalyzeContent(fileName, content string) *models.TableSummary {
	name := filepath.Base(fileName)

	format := ClassifyFileName(fileName)
	switch format {
	case models.FileFormatCSV, models.FileFormatTSV:
		return ParseDelimited(name, content, format.Delimiter())
	case models.FileFormatJSON:
		return ParseJSON(name, content)
	default:
		// Callers are expected to gate on IsRecognizedDataFile, but an
		// unsupported file invoked anyway degrades to raw text rather
		// than failing.
		return &models.TableSummary{
			Name:        name,
			Kind:        models.SummaryKindUnrecognized,
			RawFallback: truncate(content, models.RawFallbackLimit),
		}
	}
}

func (e *engine) ClearCache() {
	e.cache.Clear()
	e.logger.Debug("Cleared data context cache")
}

var _ Engine = (*engine)(nil)
