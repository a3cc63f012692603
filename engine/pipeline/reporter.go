package pipeline

import (
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/emojiconv/core/config"
)

// Reporter emits per-record diagnostics, gated by a verbosity level.
// It is safe for concurrent use.
type Reporter struct {
	level    config.Verbosity
	dropped  atomic.Int64
	fallback atomic.Int64
}

// NewReporter creates a reporter for a verbosity level.
func NewReporter(level config.Verbosity) *Reporter {
	return &Reporter{level: level}
}

// Failure reports a record which has been dropped.
func (r *Reporter) Failure(format string, v ...interface{}) {
	r.dropped.Add(1)
	if r.level >= config.Failures {
		tracer().Errorf("❌ %s", fmt.Sprintf(format, v...))
	}
}

// Warning reports a record which could only be resolved by a fallback.
func (r *Reporter) Warning(format string, v ...interface{}) {
	r.fallback.Add(1)
	if r.level >= config.Warnings {
		tracer().Infof("⚠️ %s", fmt.Sprintf(format, v...))
	}
}

// Trace reports a record which has been resolved regularly.
func (r *Reporter) Trace(format string, v ...interface{}) {
	if r.level >= config.Trace {
		tracer().Infof("✅ %s", fmt.Sprintf(format, v...))
	}
}

// Dropped is the number of failures reported so far.
func (r *Reporter) Dropped() int {
	return int(r.dropped.Load())
}

// Fallbacks is the number of warnings reported so far.
func (r *Reporter) Fallbacks() int {
	return int(r.fallback.Load())
}
