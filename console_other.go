//go:build !windows

package qlog

import "os"

// NewConsoleSink returns a sink for a console stream. Styles are emitted as
// escape sequences when f is a terminal and dropped when output is
// redirected, so piped output stays clean without any change at the call
// sites.
func NewConsoleSink(f *os.File) Sink {
	if isTerminal(f) {
		return NewStreamSink(f)
	}

	return NewStreamSink(f, WithoutStyles())
}
