package qlog

import "fmt"

// Message is the pending-write token for one in-progress chain. Each
// [Message.Log] marks its receiver treated and returns a fresh token for
// the next link; [Message.End] on the last token of the chain, the only one
// never treated, emits the append text. End on a superseded token is a
// no-op, so the bracket closes exactly once per logical message no matter
// how many values were chained.
//
// [Message.Close] is End in io.Closer clothing, which lets a chain be
// finished on scope exit:
//
//	defer qlog.Error.Log("shutting down: ").Log(err).Close()
//
// A Message snapshots its logger's sink and visibility when the chain
// starts; a concurrent filter or sink change cannot split one message in
// half.
type Message struct {
	sink    Sink
	suffix  string
	err     error
	visible bool
	treated bool
}

// Log emits v and returns the token for the next link of the chain.
func (m *Message) Log(v any) *Message {
	m.treated = true

	next := &Message{
		sink:    m.sink,
		suffix:  m.suffix,
		err:     m.err,
		visible: m.visible,
	}
	next.emit(v)

	return next
}

// End finishes the chain, emitting the append text if the message was
// visible. Calling End on a token that a later Log superseded does
// nothing; the last token wins.
func (m *Message) End() {
	if m.treated {
		return
	}

	m.treated = true
	if m.visible && m.suffix != "" {
		m.writeString(m.suffix)
	}
}

// Close finishes the chain and reports the first sink error it
// encountered.
func (m *Message) Close() error {
	m.End()

	return m.err
}

// Err returns the first sink error encountered so far.
func (m *Message) Err() error {
	return m.err
}

// emit writes one chained value. A [Control] is forwarded to the sink's
// control channel and a [Style] goes through the sink's style capability
// when it has one; anything else is formatted in the manner of fmt.Sprint.
// Suppressed chains emit nothing.
func (m *Message) emit(v any) {
	if !m.visible {
		return
	}

	switch v := v.(type) {
	case Control:
		if err := m.sink.WriteControl(v); err != nil && m.err == nil {
			m.err = err
		}
	case Style:
		m.setStyle(v)
	default:
		m.write(fmt.Append(nil, v))
	}
}

func (m *Message) emitf(format string, args ...any) {
	if !m.visible {
		return
	}

	m.write(fmt.Appendf(nil, format, args...))
}

// setStyle prefers the sink's attribute side-channel and falls back to
// inline escape sequences for plain byte sinks.
func (m *Message) setStyle(s Style) {
	if styled, ok := m.sink.(StyleSink); ok {
		if err := styled.SetStyle(s); err != nil && m.err == nil {
			m.err = err
		}

		return
	}

	m.writeString(s.Escape())
}

func (m *Message) write(p []byte) {
	if _, err := m.sink.Write(p); err != nil && m.err == nil {
		m.err = err
	}
}

func (m *Message) writeString(s string) {
	m.write([]byte(s))
}
