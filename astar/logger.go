package astar

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nop    = zap.NewNop()
	logger atomic.Pointer[zap.Logger]
)

// Logger returns the package logger. It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger configures the package logger. It may be called while
// searches run on other goroutines; nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
