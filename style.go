package qlog

import (
	"errors"
	"fmt"
	"strings"
)

// Color is one of the eight classic terminal colors, or [ColorNone] for the
// terminal default.
type Color uint8

const (
	// ColorNone leaves the terminal default in place.
	ColorNone Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// ErrUnknownColor indicates an unrecognized color name.
var ErrUnknownColor = errors.New("unknown color")

var colorNames = [...]string{
	ColorNone:    "none",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
}

// String returns the lowercase name of the color.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}

	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor parses a color name. The empty string parses as [ColorNone].
func ParseColor(color string) (Color, error) {
	name := strings.ToLower(color)
	if name == "" {
		return ColorNone, nil
	}

	for c, n := range colorNames {
		if n == name {
			return Color(c), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, color)
}

// AllColorStrings returns every accepted color name, for flag help and
// shell completions.
func AllColorStrings() []string {
	return colorNames[:]
}

// Style describes terminal rendering state: foreground and background
// colors plus a bold flag. The zero value resets rendering to the terminal
// default.
//
// A Style is a stateless value with two renderings: [Style.Escape] for
// byte-stream sinks and [Style.Attributes] for console APIs that take an
// attribute word. Written into a chain it changes how the following values
// render without counting as a message boundary.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
}

// StyleReset restores default terminal rendering.
var StyleReset = Style{}

// Escape returns the ANSI escape sequence selecting the style. The bold
// flag is encoded first, as \x1b[1m or \x1b[0m, so a non-bold style doubles
// as a reset; colors follow as a single SGR sequence.
func (s Style) Escape() string {
	var b strings.Builder

	if s.Bold {
		b.WriteString("\x1b[1m")
	} else {
		b.WriteString("\x1b[0m")
	}

	if s.Foreground != ColorNone || s.Background != ColorNone {
		b.WriteString("\x1b[")

		if s.Foreground != ColorNone {
			fmt.Fprintf(&b, "%d", 29+s.Foreground)

			if s.Background != ColorNone {
				b.WriteByte(';')
			}
		}

		if s.Background != ColorNone {
			fmt.Fprintf(&b, "%d", 39+s.Background)
		}

		b.WriteByte('m')
	}

	return b.String()
}

// Windows console attribute bits (wincon.h FOREGROUND_* values).
const (
	attrBlue      uint16 = 0x1
	attrGreen     uint16 = 0x2
	attrRed       uint16 = 0x4
	attrIntensity uint16 = 0x8
)

var colorAttrs = [...]uint16{
	ColorNone:    attrRed | attrGreen | attrBlue,
	ColorBlack:   0,
	ColorRed:     attrRed,
	ColorGreen:   attrGreen,
	ColorYellow:  attrRed | attrGreen,
	ColorBlue:    attrBlue,
	ColorMagenta: attrRed | attrBlue,
	ColorCyan:    attrGreen | attrBlue,
	ColorWhite:   attrRed | attrGreen | attrBlue,
}

// Attributes returns the style as a Windows console attribute word: color
// bits in the low nibble, intensity for bold, background color shifted into
// the next nibble. [ColorNone] maps to the default light-gray foreground
// and black background.
func (s Style) Attributes() uint16 {
	attr := colorAttrs[ColorWhite]
	if int(s.Foreground) < len(colorAttrs) {
		attr = colorAttrs[s.Foreground]
	}

	if s.Bold {
		attr |= attrIntensity
	}

	if s.Background != ColorNone && int(s.Background) < len(colorAttrs) {
		attr |= colorAttrs[s.Background] << 4
	}

	return attr
}
