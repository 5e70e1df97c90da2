// Package logging builds the process logger from configuration.
package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/upadhyeammit/smart-proxy/framework/config"
)

// New returns a development (console) or production (JSON) zap logger at
// cfg.Level. An empty level means info.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Level != "" {
		parsed, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid LOG_LEVEL %q", cfg.Level)
		}
		level = parsed
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}
	return logger, nil
}
