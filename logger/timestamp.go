package logger

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// TimestampLayout is the layout used for log entry timestamps:
// a calendar date, a space and a wall clock time with
// millisecond precision.
const TimestampLayout = "2006-01-02 15:04:05.000"

// FormatTimestamp renders t using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// TimestampEncoder encodes log entry timestamps using
// TimestampLayout.
func TimestampEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(FormatTimestamp(t))
}
