package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds the process-wide logger. The "local" environment gets the
// human-readable development config; everything else logs production JSON.
func New(env string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "local" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
