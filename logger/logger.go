package logger

import (
	"fmt"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Logger writes messages at or below its verbosity level.
// Messages logged with a level greater than the current
// verbosity are discarded.
//
// The verbosity belongs to the Logger instance, so independent
// components may log at different verbosities.
type Logger struct {
	zap       *zap.Logger
	verbosity *atomic.Int32
}

// New returns a new Logger with the given verbosity that
// writes to stdout.
func New(verbosity int) (*Logger, error) {
	if verbosity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLogLevel, verbosity)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = TimestampEncoder

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config build: %w", err)
	}

	return &Logger{
		zap:       log,
		verbosity: atomic.NewInt32(int32(verbosity)),
	}, nil
}

// NewWithZap returns a new Logger with the given verbosity that
// writes through log.
func NewWithZap(verbosity int, log *zap.Logger) (*Logger, error) {
	if verbosity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLogLevel, verbosity)
	}

	return &Logger{
		zap:       log,
		verbosity: atomic.NewInt32(int32(verbosity)),
	}, nil
}

// NewNop returns a Logger that discards all messages.
func NewNop() *Logger {
	return &Logger{
		zap:       zap.NewNop(),
		verbosity: atomic.NewInt32(0),
	}
}

// Log writes msg if level is lesser than or equal to the
// current verbosity.
//
// The level is not validated: the verbosity is never negative, so a
// message logged with a negative level is always written.
func (l *Logger) Log(level int, msg string, fields ...zap.Field) {
	if int32(level) > l.verbosity.Load() {
		return
	}

	l.zap.Info(msg, fields...)
}

// Logf writes the formatted message if level is lesser than or
// equal to the current verbosity. Level semantics match Log.
func (l *Logger) Logf(level int, format string, args ...interface{}) {
	if int32(level) > l.verbosity.Load() {
		return
	}

	l.zap.Info(fmt.Sprintf(format, args...))
}

// SetLevel changes the verbosity of the Logger.
func (l *Logger) SetLevel(level int) error {
	if level < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLogLevel, level)
	}

	l.verbosity.Store(int32(level))

	return nil
}

// Level reports the current verbosity of the Logger.
func (l *Logger) Level() int {
	return int(l.verbosity.Load())
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}
