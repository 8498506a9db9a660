package qlog

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
)

// FileConfig is the YAML configuration for the façade: an optional filter
// level plus per-severity decoration, keyed by severity name.
//
//	level: info
//	loggers:
//	  warning:
//	    prepend: "[ww] "
//	    color: {name: yellow}
//	  error:
//	    prepend: "[EE] "
//	    color: {name: red, bold: true}
type FileConfig struct {
	Level   string                `json:"level,omitempty"   yaml:"level,omitempty"`
	Loggers map[string]Decoration `json:"loggers,omitempty" yaml:"loggers,omitempty"`
}

// Decoration configures one severity's message bracket.
type Decoration struct {
	Prepend string     `json:"prepend,omitempty" yaml:"prepend,omitempty"`
	Append  string     `json:"append,omitempty"  yaml:"append,omitempty"`
	Color   *ColorSpec `json:"color,omitempty"   yaml:"color,omitempty"`
}

// ColorSpec names a [Style] in configuration files.
type ColorSpec struct {
	Name       string `json:"name,omitempty"       yaml:"name,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	Bold       bool   `json:"bold,omitempty"       yaml:"bold,omitempty"`
}

// Style resolves the named colors into a [Style].
func (c ColorSpec) Style() (Style, error) {
	fg, err := ParseColor(c.Name)
	if err != nil {
		return Style{}, err
	}

	bg, err := ParseColor(c.Background)
	if err != nil {
		return Style{}, err
	}

	return Style{Foreground: fg, Background: bg, Bold: c.Bold}, nil
}

// LoadConfigFile reads and validates a YAML configuration file.
func LoadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses and validates YAML configuration bytes.
func ParseConfig(data []byte) (*FileConfig, error) {
	var cfg FileConfig

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks level names and color names without touching any global
// state.
func (c *FileConfig) Validate() error {
	if c.Level != "" {
		if _, err := ParseLevel(c.Level); err != nil {
			return err
		}
	}

	for name, decor := range c.Loggers {
		level, err := ParseLevel(name)
		if err != nil {
			return err
		}

		if err := validSeverity(level); err != nil {
			return fmt.Errorf("logger %q: %w", name, err)
		}

		if decor.Color != nil {
			if _, err := decor.Color.Style(); err != nil {
				return fmt.Errorf("logger %q: %w", name, err)
			}
		}
	}

	return nil
}

// Apply sets the filter level, when one is configured, and broadcasts each
// severity's decoration to every registered logger of that severity. A
// configured color wraps the prepend text in the style's escape sequence
// and terminates the append text with a reset.
func (c *FileConfig) Apply() error {
	if c.Level != "" {
		if err := SetLogLevelString(c.Level); err != nil {
			return err
		}
	}

	for name, decor := range c.Loggers {
		level, err := ParseLevel(name)
		if err != nil {
			return err
		}

		prepend, suffix := decor.Prepend, decor.Append

		if decor.Color != nil {
			style, err := decor.Color.Style()
			if err != nil {
				return fmt.Errorf("logger %q: %w", name, err)
			}

			prepend = style.Escape() + prepend
			suffix += StyleReset.Escape()
		}

		if err := SetPrependFor(level, prepend); err != nil {
			return fmt.Errorf("logger %q: %w", name, err)
		}

		if err := SetAppendFor(level, suffix); err != nil {
			return fmt.Errorf("logger %q: %w", name, err)
		}
	}

	return nil
}

// ConfigSchema returns the JSON Schema describing [FileConfig].
func ConfigSchema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[FileConfig](nil)
	if err != nil {
		return nil, fmt.Errorf("deriving config schema: %w", err)
	}

	schema.Title = "qlog configuration"

	return schema, nil
}
