package qlog

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// filterLevel is the process-wide filter, read lock-free on every write
// attempt. A stale read only risks an outdated but valid visibility
// decision, never a torn one.
var filterLevel atomic.Int32

func init() {
	filterLevel.Store(int32(LevelError))
}

// SetLogLevel sets the process-wide filter level. Messages below the filter
// are dropped; [LevelDisabled] suppresses all output.
func SetLogLevel(l Level) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownLevel, int8(l))
	}

	filterLevel.Store(int32(l))

	return nil
}

// SetLogLevelString parses level and sets the process-wide filter level.
func SetLogLevelString(level string) error {
	l, err := ParseLevel(level)
	if err != nil {
		return err
	}

	return SetLogLevel(l)
}

// LogLevel returns the current process-wide filter level.
func LogLevel() Level {
	return Level(filterLevel.Load())
}

// loggerRegistry tracks every live [Logger] by severity so that broadcast
// reconfiguration reaches independently declared instances. Backing storage
// is allocated on first registration and released when a severity's list
// empties, so declaration order across packages never matters.
type loggerRegistry struct {
	byLevel map[Level][]*Logger
	mu      sync.Mutex
}

var registry loggerRegistry

func (r *loggerRegistry) register(l *Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byLevel == nil {
		r.byLevel = make(map[Level][]*Logger)
	}

	r.byLevel[l.level] = append(r.byLevel[l.level], l)
}

// unregister removes l from its severity's list. An instance that is not
// found indicates a lifecycle bug inside this package, not a recoverable
// runtime condition.
func (r *loggerRegistry) unregister(l *Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.byLevel[l.level]
	for i, registered := range list {
		if registered != l {
			continue
		}

		list = append(list[:i], list[i+1:]...)
		if len(list) == 0 {
			delete(r.byLevel, l.level)
			if len(r.byLevel) == 0 {
				r.byLevel = nil
			}
		} else {
			r.byLevel[l.level] = list
		}

		return
	}

	panic("qlog: unregistering a logger that was never registered")
}

func (r *loggerRegistry) forEach(level Level, fn func(*Logger)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.byLevel[level] {
		fn(l)
	}
}

func (r *loggerRegistry) forAll(fn func(*Logger)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, list := range r.byLevel {
		for _, l := range list {
			fn(l)
		}
	}
}

// SetOutputAll replaces the sink of every registered logger across all
// severities. Loggers declared afterwards start with no sink; registration
// time matters.
func SetOutputAll(s Sink) {
	registry.forAll(func(l *Logger) { l.SetOutput(s) })
}

// SetOutputFor replaces the sink of every registered logger of the given
// severity.
func SetOutputFor(level Level, s Sink) error {
	if err := validSeverity(level); err != nil {
		return err
	}

	registry.forEach(level, func(l *Logger) { l.SetOutput(s) })

	return nil
}

// SetPrependFor sets the prepend text of every registered logger of the
// given severity. Empty text clears it.
func SetPrependFor(level Level, text string) error {
	if err := validSeverity(level); err != nil {
		return err
	}

	registry.forEach(level, func(l *Logger) { l.SetPrepend(text) })

	return nil
}

// SetAppendFor sets the append text of every registered logger of the
// given severity. Empty text clears it.
func SetAppendFor(level Level, text string) error {
	if err := validSeverity(level); err != nil {
		return err
	}

	registry.forEach(level, func(l *Logger) { l.SetAppend(text) })

	return nil
}
