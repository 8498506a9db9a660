package qlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/qlog"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    qlog.Level
		expectError bool
	}{
		"debug level": {
			input:    "debug",
			expected: qlog.LevelDebug,
		},
		"trace level": {
			input:    "trace",
			expected: qlog.LevelTrace,
		},
		"info level": {
			input:    "info",
			expected: qlog.LevelInfo,
		},
		"warn level": {
			input:    "warn",
			expected: qlog.LevelWarning,
		},
		"warning level": {
			input:    "warning",
			expected: qlog.LevelWarning,
		},
		"error level": {
			input:    "error",
			expected: qlog.LevelError,
		},
		"disable sentinel": {
			input:    "disable",
			expected: qlog.LevelDisabled,
		},
		"disabled sentinel": {
			input:    "disabled",
			expected: qlog.LevelDisabled,
		},
		"case insensitive": {
			input:    "ERROR",
			expected: qlog.LevelError,
		},
		"unknown level": {
			input:       "verbose",
			expectError: true,
		},
		"empty string": {
			input:       "",
			expectError: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			lvl, err := qlog.ParseLevel(tc.input)
			if tc.expectError {
				require.Error(t, err)
				require.ErrorIs(t, err, qlog.ErrUnknownLevel)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, lvl)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level    qlog.Level
		expected string
	}{
		"debug":        {level: qlog.LevelDebug, expected: "debug"},
		"trace":        {level: qlog.LevelTrace, expected: "trace"},
		"info":         {level: qlog.LevelInfo, expected: "info"},
		"warning":      {level: qlog.LevelWarning, expected: "warning"},
		"error":        {level: qlog.LevelError, expected: "error"},
		"disabled":     {level: qlog.LevelDisabled, expected: "disabled"},
		"out of range": {level: qlog.Level(42), expected: "level(42)"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.level.String())
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	severities := qlog.Severities()
	require.Len(t, severities, 5)

	for i := 1; i < len(severities); i++ {
		assert.Less(t, severities[i-1], severities[i])
	}

	// The sentinel sorts below every severity.
	for _, s := range severities {
		assert.Less(t, qlog.LevelDisabled, s)
	}
}

func TestLevelValid(t *testing.T) {
	t.Parallel()

	assert.True(t, qlog.LevelDisabled.Valid())
	assert.True(t, qlog.LevelDebug.Valid())
	assert.True(t, qlog.LevelError.Valid())
	assert.False(t, qlog.Level(-1).Valid())
	assert.False(t, qlog.Level(6).Valid())
}

func TestAllLevelStrings(t *testing.T) {
	t.Parallel()

	names := qlog.AllLevelStrings()
	require.Len(t, names, 6)

	for _, name := range names {
		_, err := qlog.ParseLevel(name)
		assert.NoError(t, err)
	}
}
