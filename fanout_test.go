package qlog_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/qlog"
)

func TestNewFanout(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		opts    []qlog.FanoutOption
		wantCap int
	}{
		"default buffer size": {
			opts:    nil,
			wantCap: 64,
		},
		"custom buffer size": {
			opts:    []qlog.FanoutOption{qlog.WithBufferSize(128)},
			wantCap: 128,
		},
		"clamp zero to one": {
			opts:    []qlog.FanoutOption{qlog.WithBufferSize(0)},
			wantCap: 1,
		},
		"clamp negative to one": {
			opts:    []qlog.FanoutOption{qlog.WithBufferSize(-5)},
			wantCap: 1,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fan := qlog.NewFanout(tc.opts...)

			sub := fan.Subscribe()
			defer sub.Close()

			assert.Equal(t, tc.wantCap, cap(sub.C()))
		})
	}
}

func TestFanoutWrite(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		numSubscribers int
	}{
		"single subscriber":    {numSubscribers: 1},
		"multiple subscribers": {numSubscribers: 3},
		"no subscribers":       {numSubscribers: 0},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fan := qlog.NewFanout()

			subs := make([]*qlog.Subscription, tc.numSubscribers)
			for i := range subs {
				subs[i] = fan.Subscribe()
			}

			n, err := fan.Write([]byte("hello"))
			require.NoError(t, err)
			assert.Equal(t, 5, n)

			for _, sub := range subs {
				assert.Equal(t, "hello", string(<-sub.C()))
				sub.Close()
			}
		})
	}
}

func TestFanoutRingBuffer(t *testing.T) {
	t.Parallel()

	fan := qlog.NewFanout(qlog.WithBufferSize(1))

	sub := fan.Subscribe()
	defer sub.Close()

	_, err := fan.Write([]byte("old"))
	require.NoError(t, err)
	_, err = fan.Write([]byte("new"))
	require.NoError(t, err)

	// The full buffer dropped the oldest entry instead of blocking.
	assert.Equal(t, "new", string(<-sub.C()))
}

func TestFanoutWriteControl(t *testing.T) {
	t.Parallel()

	fan := qlog.NewFanout()

	sub := fan.Subscribe()
	defer sub.Close()

	require.NoError(t, fan.WriteControl(qlog.ControlEndl))
	require.NoError(t, fan.WriteControl(qlog.ControlFlush))

	assert.Equal(t, "\n", string(<-sub.C()))
	assert.Empty(t, sub.C(), "flushes are not delivered")
}

func TestFanoutAsLoggerSink(t *testing.T) {
	t.Parallel()

	fan := qlog.NewFanout()

	sub := fan.Subscribe()
	defer sub.Close()

	l := newTestLogger(t, qlog.LevelError)
	l.SetOutput(fan)
	l.SetPrepend("[EE] ")

	require.NoError(t, l.Println("lost connection"))

	assert.Equal(t, "[EE] ", string(<-sub.C()))
	assert.Equal(t, "lost connection", string(<-sub.C()))
	assert.Equal(t, "\n", string(<-sub.C()))
}

func TestFanoutClose(t *testing.T) {
	t.Parallel()

	fan := qlog.NewFanout()
	sub := fan.Subscribe()

	require.NoError(t, fan.Close())
	require.NoError(t, fan.Close())

	_, open := <-sub.C()
	assert.False(t, open)

	// Writes after close are accepted and dropped.
	n, err := fan.Write([]byte("late"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// Subscribing after close yields an already-closed channel.
	late := fan.Subscribe()
	_, open = <-late.C()
	assert.False(t, open)
}

func TestFanoutClosedSubscriberCompaction(t *testing.T) {
	t.Parallel()

	fan := qlog.NewFanout()

	closedSub := fan.Subscribe()
	liveSub := fan.Subscribe()
	defer liveSub.Close()

	closedSub.Close()

	_, err := fan.Write([]byte("entry"))
	require.NoError(t, err)

	assert.Equal(t, "entry", string(<-liveSub.C()))

	_, open := <-closedSub.C()
	assert.False(t, open)
}

func TestFanoutConcurrentWrites(t *testing.T) {
	t.Parallel()

	const writers = 8

	fan := qlog.NewFanout(qlog.WithBufferSize(writers * 10))

	sub := fan.Subscribe()
	defer sub.Close()

	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 10 {
				_, err := fan.Write([]byte("x"))
				assert.NoError(t, err)
			}
		}()
	}

	wg.Wait()

	for range writers * 10 {
		assert.Equal(t, "x", string(<-sub.C()))
	}
}
