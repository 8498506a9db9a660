//go:build windows

package qlog

import (
	"os"

	"golang.org/x/sys/windows"
)

// NewConsoleSink returns a sink for a console stream. On a Windows console
// styles are applied through the console attribute API instead of inline
// escape sequences; redirected output drops them, so piped output stays
// clean without any change at the call sites.
func NewConsoleSink(f *os.File) Sink {
	if !isTerminal(f) {
		return NewStreamSink(f, WithoutStyles())
	}

	handle := windows.Handle(f.Fd())

	// The attribute word in effect now becomes the reset target.
	defaultAttr := Style{}.Attributes()

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(handle, &info); err == nil {
		defaultAttr = uint16(info.Attributes)
	}

	return &consoleSink{
		StreamSink:  StreamSink{w: f},
		handle:      handle,
		defaultAttr: defaultAttr,
	}
}

// consoleSink writes bytes like a StreamSink but applies styles with
// SetConsoleTextAttribute rather than embedding sequences in the stream.
type consoleSink struct {
	StreamSink
	handle      windows.Handle
	defaultAttr uint16
}

func (s *consoleSink) SetStyle(st Style) error {
	attr := st.Attributes()
	if st == (Style{}) {
		attr = s.defaultAttr
	}

	return windows.SetConsoleTextAttribute(s.handle, attr)
}
