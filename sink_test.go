package qlog_test

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/qlog"
)

func TestStreamSinkWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	sink := qlog.NewStreamSink(&buf)

	n, err := sink.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	require.NoError(t, sink.WriteControl(qlog.ControlEndl))
	assert.Equal(t, "hello\n", buf.String())
}

func TestStreamSinkUnknownControl(t *testing.T) {
	t.Parallel()

	sink := qlog.NewStreamSink(&bytes.Buffer{})
	assert.Error(t, sink.WriteControl(qlog.Control(99)))
}

func TestStreamSinkFlushesBufferedWriters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	bw := bufio.NewWriter(&buf)
	sink := qlog.NewStreamSink(bw)

	_, err := sink.Write([]byte("queued"))
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	require.NoError(t, sink.WriteControl(qlog.ControlFlush))
	assert.Equal(t, "queued", buf.String())
}

func TestStreamSinkStyles(t *testing.T) {
	t.Parallel()

	red := qlog.Style{Foreground: qlog.ColorRed}

	t.Run("inline by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		sink := qlog.NewStreamSink(&buf)
		require.NoError(t, sink.SetStyle(red))
		assert.Equal(t, red.Escape(), buf.String())
	})

	t.Run("discarded without styles", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		sink := qlog.NewStreamSink(&buf, qlog.WithoutStyles())
		require.NoError(t, sink.SetStyle(red))
		assert.Empty(t, buf.String())
	})
}

func TestFileSink(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "program.log")

	sink, err := qlog.NewFileSink(path)
	require.NoError(t, err)

	_, err = sink.Write([]byte("first"))
	require.NoError(t, err)
	require.NoError(t, sink.WriteControl(qlog.ControlEndl))
	require.NoError(t, sink.Close())

	// Reopening appends rather than truncating.
	sink, err = qlog.NewFileSink(path)
	require.NoError(t, err)

	_, err = sink.Write([]byte("second"))
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", string(data))
}

func TestFileSinkDiscardsStyles(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plain.log")

	sink, err := qlog.NewFileSink(path)
	require.NoError(t, err)

	require.NoError(t, sink.SetStyle(qlog.Style{Foreground: qlog.ColorRed}))

	_, err = sink.Write([]byte("text"))
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "text", string(data))
}

func TestFileSinkOpenError(t *testing.T) {
	t.Parallel()

	_, err := qlog.NewFileSink(filepath.Join(t.TempDir(), "missing", "program.log"))
	require.Error(t, err)
}

func TestConsoleSinkRedirectedOutput(t *testing.T) {
	t.Parallel()

	f, err := os.CreateTemp(t.TempDir(), "console")
	require.NoError(t, err)

	t.Cleanup(func() { f.Close() })

	sink := qlog.NewConsoleSink(f)

	// A temp file is not a terminal, so styles must be dropped.
	styled, ok := sink.(qlog.StyleSink)
	require.True(t, ok)
	require.NoError(t, styled.SetStyle(qlog.Style{Foreground: qlog.ColorRed}))

	_, err = sink.Write([]byte("plain"))
	require.NoError(t, err)

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "plain", string(data))
}
