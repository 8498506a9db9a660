package qlog

import (
	"sync"
	"sync/atomic"
)

const defaultFanoutBuffer = 64

// Fanout is a [Sink] that copies every write to subscriber channels, which
// is useful for teeing the façade's output into a TUI or a test harness.
//
// Delivery uses ring-buffer semantics: when a subscriber's channel is full
// the oldest entry is dropped, so logging through a Fanout never blocks.
// Line ends arrive as newline entries. Safe for concurrent use.
//
// Create instances with [NewFanout].
type Fanout struct {
	subscribers []*Subscription
	bufSize     int
	mu          sync.Mutex
	closed      bool
}

// FanoutOption configures a [Fanout].
type FanoutOption func(*Fanout)

// WithBufferSize sets the channel buffer size for new subscriptions.
// Values less than 1 are clamped to 1.
func WithBufferSize(n int) FanoutOption {
	return func(f *Fanout) {
		if n < 1 {
			n = 1
		}

		f.bufSize = n
	}
}

// NewFanout creates a [Fanout] with the given options.
// The default buffer size is 64.
func NewFanout(opts ...FanoutOption) *Fanout {
	f := &Fanout{
		bufSize: defaultFanoutBuffer,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Write copies p and delivers the copy to all active subscribers.
// Write always returns len(p), nil.
func (f *Fanout) Write(p []byte) (int, error) {
	entry := make([]byte, len(p))
	copy(entry, p)

	f.deliver(entry)

	return len(p), nil
}

// WriteControl delivers line ends as newline entries. Flushes have no
// meaning for channel delivery and are dropped.
func (f *Fanout) WriteControl(c Control) error {
	if c == ControlEndl {
		f.deliver([]byte{'\n'})
	}

	return nil
}

func (f *Fanout) deliver(entry []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}

	// Compact closed subscriptions and deliver in one pass.
	alive := f.subscribers[:0]
	for _, sub := range f.subscribers {
		if sub.closed.Load() {
			close(sub.ch)
			continue
		}
		// Ring-buffer: drop oldest if full.
		select {
		case sub.ch <- entry:
		default:
			<-sub.ch

			sub.ch <- entry
		}

		alive = append(alive, sub)
	}
	// Clear trailing references for GC.
	for i := len(alive); i < len(f.subscribers); i++ {
		f.subscribers[i] = nil
	}

	f.subscribers = alive
}

// Subscribe creates and registers a new [Subscription]. If the Fanout is
// already closed the returned subscription's channel is immediately closed.
func (f *Fanout) Subscribe() *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	sub := &Subscription{
		ch: make(chan []byte, f.bufSize),
	}

	if f.closed {
		close(sub.ch)
		return sub
	}

	f.subscribers = append(f.subscribers, sub)

	return sub
}

// Close marks the Fanout as closed, closes all subscription channels, and
// releases the subscriber list. Idempotent.
func (f *Fanout) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}

	f.closed = true
	for _, sub := range f.subscribers {
		close(sub.ch)
	}

	f.subscribers = nil

	return nil
}

// Subscription receives log entries from a [Fanout].
type Subscription struct {
	ch     chan []byte
	closed atomic.Bool
}

// C returns the read-only channel that delivers log entries.
// Callers must not modify the returned byte slices.
func (s *Subscription) C() <-chan []byte {
	return s.ch
}

// Close marks the subscription as closed. The Fanout will close the
// underlying channel on its next delivery or Close call. Idempotent.
func (s *Subscription) Close() {
	s.closed.Store(true)
}
