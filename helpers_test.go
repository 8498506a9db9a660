package qlog_test

import (
	"testing"

	"go.jacobcolvin.com/qlog"
)

// newTestLogger registers a logger for the duration of the test.
func newTestLogger(t *testing.T, level qlog.Level) *qlog.Logger {
	t.Helper()

	l := qlog.NewLogger(level)
	t.Cleanup(func() { _ = l.Close() })

	return l
}

// resetGlobals restores the filter level and the shared severity handles
// after a test that uses broadcast configuration. Tests calling this must
// not run in parallel.
func resetGlobals(t *testing.T) {
	t.Helper()

	t.Cleanup(func() {
		_ = qlog.SetLogLevel(qlog.LevelError)

		handles := []*qlog.Logger{
			qlog.Debug, qlog.Trace, qlog.Info, qlog.Warning, qlog.Error,
		}
		for _, h := range handles {
			h.SetOutput(nil)
			h.SetPrepend("")
			h.SetAppend("")
		}
	})
}
