// Package sinktest provides a recording sink for tests of code that writes
// through [go.jacobcolvin.com/qlog].
package sinktest

import (
	"bytes"
	"sync"

	"go.jacobcolvin.com/qlog"
)

// Sink records everything written to it. Bytes accumulate in a buffer with
// line ends recorded as "\n", so expected output can be asserted as one
// string; controls and styles are additionally recorded in order for
// fine-grained assertions. The zero value is ready to use and safe for
// concurrent use.
type Sink struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	controls []qlog.Control
	styles   []qlog.Style
	err      error
}

// Write records p. It returns the forced error, if one is set.
func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return 0, s.err
	}

	return s.buf.Write(p)
}

// WriteControl records c, appending a newline to the buffer for
// [qlog.ControlEndl].
func (s *Sink) WriteControl(c qlog.Control) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	s.controls = append(s.controls, c)
	if c == qlog.ControlEndl {
		s.buf.WriteByte('\n')
	}

	return nil
}

// SetStyle records st without adding escape sequences to the buffer.
func (s *Sink) SetStyle(st qlog.Style) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	s.styles = append(s.styles, st)

	return nil
}

// String returns everything written so far.
func (s *Sink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buf.String()
}

// Controls returns the recorded control signals in write order.
func (s *Sink) Controls() []qlog.Control {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]qlog.Control(nil), s.controls...)
}

// Styles returns the recorded styles in write order.
func (s *Sink) Styles() []qlog.Style {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]qlog.Style(nil), s.styles...)
}

// FailWith forces every subsequent operation to return err. Pass nil to
// clear.
func (s *Sink) FailWith(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Reset discards everything recorded so far.
func (s *Sink) Reset() {
	s.mu.Lock()
	s.buf.Reset()
	s.controls = nil
	s.styles = nil
	s.err = nil
	s.mu.Unlock()
}
