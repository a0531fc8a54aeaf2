package renderer

import (
	"go.uber.org/zap"

	"github.com/marrach/gotracer/pkg/core"
)

// ZapLogger adapts a zap.SugaredLogger to core.Logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger builds a production zap logger (JSON, info level and above)
// wrapped as a core.Logger. Callers should arrange to call Sync before exit.
func NewLogger() (*ZapLogger, error) {
	base, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: base.Sugar()}, nil
}

// Infof logs at info level.
func (l *ZapLogger) Infof(template string, args ...interface{}) {
	l.sugar.Infof(template, args...)
}

// Warnf logs at warn level.
func (l *ZapLogger) Warnf(template string, args ...interface{}) {
	l.sugar.Warnf(template, args...)
}

// Errorf logs at error level.
func (l *ZapLogger) Errorf(template string, args ...interface{}) {
	l.sugar.Errorf(template, args...)
}

// Sync flushes any buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

var _ core.Logger = (*ZapLogger)(nil)
