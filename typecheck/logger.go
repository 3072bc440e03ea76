// Copyright (c) 2025 Visvasity LLC

package typecheck

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the typecheck package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the typecheck package's logger.
// This must be called before any type is checked.
func SetLogger(l *zap.Logger) {
	logger = l
}
