package qlog

import (
	"fmt"
	"io"
	"os"
)

// Control is a non-byte signal forwarded to a sink alongside the character
// stream.
type Control uint8

const (
	// ControlEndl terminates the current line and flushes line-buffered
	// sinks.
	ControlEndl Control = iota
	// ControlFlush forces buffered data out without a line end.
	ControlFlush
)

// Endl is the line-end control value. Written into a chain like any other
// value it forwards a line end to the sink; it does not terminate the
// chain.
const Endl = ControlEndl

// Sink is the destination capability the façade writes against: a byte
// stream plus a control channel for line ends and flushes. Sinks that
// apply styles through a side channel additionally implement [StyleSink].
type Sink interface {
	io.Writer
	WriteControl(Control) error
}

// StyleSink is implemented by sinks that intercept chained [Style] values,
// either to apply them through an attribute API or to discard them. Styles
// reach sinks without it as inline escape sequences.
type StyleSink interface {
	Sink
	SetStyle(Style) error
}

type flusher interface {
	Flush() error
}

// StreamSink adapts an io.Writer into a [Sink]. Styles are emitted inline
// as escape sequences unless disabled with [WithoutStyles]. StreamSink is
// as safe for concurrent use as its underlying writer.
//
// Create instances with [NewStreamSink].
type StreamSink struct {
	w      io.Writer
	styles bool
}

// StreamOption configures a [StreamSink].
type StreamOption func(*StreamSink)

// WithoutStyles discards chained styles instead of emitting escape
// sequences, for sinks whose destination cannot render them.
func WithoutStyles() StreamOption {
	return func(s *StreamSink) {
		s.styles = false
	}
}

// NewStreamSink creates a [StreamSink] over w with the given options.
func NewStreamSink(w io.Writer, opts ...StreamOption) *StreamSink {
	s := &StreamSink{w: w, styles: true}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *StreamSink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// WriteControl writes a line end or flushes the underlying writer when it
// supports flushing.
func (s *StreamSink) WriteControl(c Control) error {
	switch c {
	case ControlEndl:
		if _, err := io.WriteString(s.w, "\n"); err != nil {
			return err
		}

		return s.flush()

	case ControlFlush:
		return s.flush()
	}

	return fmt.Errorf("qlog: unknown control %d", c)
}

// flush drains buffered writers. Unbuffered destinations, files included,
// have nothing to drain.
func (s *StreamSink) flush() error {
	if w, ok := s.w.(flusher); ok {
		return w.Flush()
	}

	return nil
}

// SetStyle emits the style's escape sequence, or nothing when styles are
// disabled.
func (s *StreamSink) SetStyle(st Style) error {
	if !s.styles {
		return nil
	}

	_, err := io.WriteString(s.w, st.Escape())

	return err
}

// FileSink is a [StreamSink] over a file opened by [NewFileSink]. Unlike a
// logger's non-owning sink reference, the FileSink owns its file and must
// be closed by the caller once no logger writes to it anymore.
type FileSink struct {
	StreamSink
	f *os.File
}

// NewFileSink opens path for appending, creating it if needed. Styles are
// disabled, since escape sequences rarely belong in a log file.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	return &FileSink{
		StreamSink: StreamSink{w: f},
		f:          f,
	}, nil
}

// Close closes the underlying file.
func (s *FileSink) Close() error {
	return s.f.Close()
}
