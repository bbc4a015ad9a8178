// Package logging builds the zap loggers used by the commands.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/tilepath/internal/config"
)

// New builds a logger from cfg. An empty File logs to stderr.
func New(cfg config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zc.OutputPaths = []string{cfg.File}
		zc.ErrorOutputPaths = []string{cfg.File}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}
	return logger, nil
}
