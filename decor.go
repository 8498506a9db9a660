package qlog

// ApplyDecorations broadcasts a bracketed, colored severity tag as the
// prepend text of every registered logger and a style reset as the append
// text, so one severity's color never bleeds into the next message:
//
//	[..] preparing data transfer
//	[ww] payload is unusually large
//	[EE] server closed the connection
//
// with "ww" in green and "EE" in red, error messages bold. Decorations are
// plain prepend/append text, so a later SetPrependFor replaces them.
func ApplyDecorations() {
	reset := StyleReset.Escape()
	green := Style{Foreground: ColorGreen}.Escape()
	red := Style{Foreground: ColorRed}.Escape()
	bold := Style{Bold: true}.Escape()

	prepends := map[Level]string{
		LevelDebug:   reset,
		LevelTrace:   reset,
		LevelInfo:    reset + "[..] ",
		LevelWarning: "[" + green + "ww" + reset + "] ",
		LevelError:   "[" + red + "EE" + reset + "]" + bold + " ",
	}

	for level, text := range prepends {
		// The levels are the declared constants; these cannot fail.
		_ = SetPrependFor(level, text)
		_ = SetAppendFor(level, reset)
	}
}

// ApplyPlainDecorations broadcasts the same severity tags as
// [ApplyDecorations] without any color, for redirected output.
func ApplyPlainDecorations() {
	prepends := map[Level]string{
		LevelInfo:    "[..] ",
		LevelWarning: "[ww] ",
		LevelError:   "[EE] ",
	}

	for level, text := range prepends {
		_ = SetPrependFor(level, text)
	}
}
