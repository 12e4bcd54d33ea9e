// Package progress logs the elapsed time of long-running operations.
//
// Algorithms receive an optional *log.Logger through their WithLogger
// option. A nil logger is valid everywhere in this package and discards
// output, so callers never branch on it.
package progress

import (
	"time"

	"github.com/charmbracelet/log"
)

// Span tracks the start time of an operation. It is meant for sequential
// use by the goroutine that opened it.
type Span struct {
	logger *log.Logger
	msg    string
	start  time.Time
}

// Start logs msg at debug level and returns a span whose Done reports the
// elapsed time.
func Start(logger *log.Logger, msg string, keyvals ...any) *Span {
	if logger != nil {
		logger.Debug(msg, keyvals...)
	}

	return &Span{logger: logger, msg: msg, start: time.Now()}
}

// Done logs the span message with the elapsed time rounded to the
// millisecond, e.g. "betweenness elapsed=1.234s".
func (s *Span) Done(keyvals ...any) time.Duration {
	elapsed := time.Since(s.start)
	if s.logger != nil {
		kv := append([]any{"elapsed", elapsed.Round(time.Millisecond)}, keyvals...)
		s.logger.Debug(s.msg, kv...)
	}

	return elapsed
}

// Info logs at info level on a possibly nil logger.
func Info(logger *log.Logger, msg string, keyvals ...any) {
	if logger != nil {
		logger.Info(msg, keyvals...)
	}
}

// Warn logs at warn level on a possibly nil logger.
func Warn(logger *log.Logger, msg string, keyvals ...any) {
	if logger != nil {
		logger.Warn(msg, keyvals...)
	}
}
