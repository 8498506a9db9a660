package qlog

import "sync"

// Logger writes messages of one fixed severity. It starts with no sink, so
// writes are dropped until [Logger.SetOutput] or a broadcast assigns one.
//
// The package-level handles [Debug] through [Error] are shared instances;
// a package that wants its own handle (with its own sink or decoration)
// declares one with [NewLogger]. Every instance of a severity is reachable
// through the broadcast functions, so independently declared handles still
// act as one logical logger per severity.
//
// A single Logger's in-progress chain is not safe for concurrent writers;
// use one instance per goroutine or serialize access externally.
// Configuration (sink, decoration, filter level) may be changed from any
// goroutine at any time.
type Logger struct {
	sink       Sink
	prepend    string
	append     string
	mu         sync.RWMutex
	level      Level
	muted      bool
	registered bool
}

// Pre-declared severity handles, one per level.
var (
	Debug   = NewLogger(LevelDebug)
	Trace   = NewLogger(LevelTrace)
	Info    = NewLogger(LevelInfo)
	Warning = NewLogger(LevelWarning)
	Error   = NewLogger(LevelError)
)

// NewLogger creates and registers a logger bound to the given severity.
// It panics when level is not a declared severity; a logger cannot be bound
// to [LevelDisabled].
func NewLogger(level Level) *Logger {
	if err := validSeverity(level); err != nil {
		panic("qlog: " + err.Error())
	}

	l := &Logger{level: level, registered: true}
	registry.register(l)

	return l
}

// Close unregisters the logger, after which broadcasts no longer reach it.
// Closing a proxy returned by [Logger.If] is a no-op. The logger never owns
// its sink, so nothing else is released.
func (l *Logger) Close() error {
	if !l.registered {
		return nil
	}

	l.registered = false
	registry.unregister(l)

	return nil
}

// Level returns the logger's fixed severity.
func (l *Logger) Level() Level {
	return l.level
}

// SetOutput assigns the sink that messages are written to. The logger does
// not take ownership; the sink must stay valid for as long as the logger
// uses it. A nil sink drops all output.
func (l *Logger) SetOutput(s Sink) {
	l.mu.Lock()
	l.sink = s
	l.mu.Unlock()
}

// Output returns the current sink, or nil when none is assigned.
func (l *Logger) Output() Sink {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.sink
}

// SetPrepend sets the text emitted before the first value of every message.
// Empty text clears it. Calling SetPrepend replaces any previous text.
func (l *Logger) SetPrepend(text string) {
	l.mu.Lock()
	l.prepend = text
	l.mu.Unlock()
}

// SetAppend sets the text emitted after the last value of every message.
// Empty text clears it. Calling SetAppend replaces any previous text.
func (l *Logger) SetAppend(text string) {
	l.mu.Lock()
	l.append = text
	l.mu.Unlock()
}

// Enabled reports whether messages of this severity currently pass the
// process-wide filter.
func (l *Logger) Enabled() bool {
	filter := LogLevel()

	return filter != LevelDisabled && l.level >= filter
}

// If returns a handle that behaves exactly like l when cond is true and
// silently discards everything, decoration included, when it is false.
// It replaces an if/else around a single log statement:
//
//	qlog.Warning.If(err != nil).Log("falling back to defaults").End()
//
// The suppressed handle is a transient copy; it is not registered and does
// not receive broadcasts.
func (l *Logger) If(cond bool) *Logger {
	if cond {
		return l
	}

	l.mu.RLock()
	proxy := &Logger{
		level:   l.level,
		sink:    l.sink,
		prepend: l.prepend,
		append:  l.append,
		muted:   true,
	}
	l.mu.RUnlock()

	return proxy
}

// Log starts a message chain: it decides visibility once, emits the prepend
// text and the first value when visible, and returns the pending-write
// token for the rest of the chain. The chain must be finished with
// [Message.End] or [Message.Close].
func (l *Logger) Log(v any) *Message {
	m := l.start()
	m.emit(v)

	return m
}

// start snapshots the visibility decision, sink, and decoration for one
// message and emits the prepend text. The decision holds for the whole
// chain even if the filter level changes concurrently, so a message is
// never half-emitted.
func (l *Logger) start() *Message {
	l.mu.RLock()
	sink, prepend, suffix, muted := l.sink, l.prepend, l.append, l.muted
	l.mu.RUnlock()

	m := &Message{
		sink:    sink,
		suffix:  suffix,
		visible: !muted && sink != nil && l.Enabled(),
	}
	if m.visible && prepend != "" {
		m.writeString(prepend)
	}

	return m
}

// Print writes one complete message: the prepend text, the given values,
// then the append text. With no values the message reduces to its bracket.
// It reports the first sink error encountered.
func (l *Logger) Print(values ...any) error {
	m := l.start()
	for _, v := range values {
		m.emit(v)
	}
	m.End()

	return m.Err()
}

// Println is [Logger.Print] with a line end written after the values, as if
// [Endl] were the last chained value.
func (l *Logger) Println(values ...any) error {
	m := l.start()
	for _, v := range values {
		m.emit(v)
	}
	m.emit(Endl)
	m.End()

	return m.Err()
}

// Printf formats one complete message in the manner of fmt.Sprintf.
func (l *Logger) Printf(format string, args ...any) error {
	m := l.start()
	m.emitf(format, args...)
	m.End()

	return m.Err()
}
