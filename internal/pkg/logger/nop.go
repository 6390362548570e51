package logger

import "go.uber.org/zap"

// NewNop returns a logger that discards everything. Intended for tests and
// for components that accept an optional logger.
func NewNop() *ZapLogger {
	return &ZapLogger{logger: zap.NewNop()}
}
