package qlog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrUnknownColorMode indicates an unrecognized color mode string.
var ErrUnknownColorMode = errors.New("unknown color mode")

var colorModes = []string{"auto", "always", "never"}

// Flags holds CLI flag names for logging configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Level  string
	Output string
	Color  string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for logging configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Call [Config.Apply] at startup to configure the
// severity handles from the parsed values.
type Config struct {
	Level  string
	Output string
	Color  string
	Flags  Flags
}

// NewConfig returns a new [Config] with zero-value fields.
// Use [Config.RegisterFlags] to add CLI flags, or set values directly.
func NewConfig() *Config {
	f := Flags{
		Level:  "log-level",
		Output: "log-output",
		Color:  "log-color",
	}

	return f.NewConfig()
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, LevelError.String(),
		fmt.Sprintf("log level, one of: %s", AllLevelStrings()))
	flags.StringVar(&c.Output, c.Flags.Output, "-",
		"log output, a file path or - for stderr")
	flags.StringVar(&c.Color, c.Flags.Color, "auto",
		fmt.Sprintf("log color decorations, one of: %s", colorModes))
}

// RegisterCompletions registers shell completions for logging flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Level,
		cobra.FixedCompletions(AllLevelStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Level, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Color,
		cobra.FixedCompletions(colorModes, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Color, err)
	}

	return nil
}

// Apply configures the façade from the stored values: it sets the global
// filter level, broadcasts a sink built from the output value to every
// registered logger, and applies severity decorations per the color value
// ("always", "never", or "auto" for terminal detection).
//
// The returned closer owns the opened log file, if any, and must be closed
// once no logger writes to it anymore.
func (c *Config) Apply() (io.Closer, error) {
	if err := SetLogLevelString(c.Level); err != nil {
		return nil, err
	}

	var (
		sink     Sink
		closer   io.Closer = nopCloser{}
		terminal bool
	)

	if c.Output == "" || c.Output == "-" {
		sink = NewConsoleSink(os.Stderr)
		terminal = isTerminal(os.Stderr)
	} else {
		fs, err := NewFileSink(c.Output)
		if err != nil {
			return nil, err
		}

		sink = fs
		closer = fs
	}

	switch c.Color {
	case "always":
		ApplyDecorations()
	case "never":
		ApplyPlainDecorations()
	case "auto", "":
		if terminal {
			ApplyDecorations()
		} else {
			ApplyPlainDecorations()
		}
	default:
		//nolint:errcheck // The sink was never handed out.
		closer.Close()

		return nil, fmt.Errorf("%w: %q", ErrUnknownColorMode, c.Color)
	}

	SetOutputAll(sink)

	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
