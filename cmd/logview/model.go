package main

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/qlog"
)

// lineMsg carries one log line from the reader.
type lineMsg struct {
	line string
}

// readDoneMsg signals that the input is exhausted.
type readDoneMsg struct{}

// model is the bubbletea model for the log viewer.
type model struct {
	sub    *qlog.Subscription
	source string
	lines  []string
	max    int
	height int
	done   bool
}

func newModel(sub *qlog.Subscription, source string, maxLines int) *model {
	return &model{
		sub:    sub,
		source: source,
		max:    maxLines,
	}
}

// Init starts waiting for the first line.
func (m *model) Init() tea.Cmd {
	return m.readLine()
}

// readLine returns a tea.Cmd that blocks on the subscription until the next
// line arrives or the channel closes.
func (m *model) readLine() tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-m.sub.C()
		if !ok {
			return readDoneMsg{}
		}

		return lineMsg{line: string(entry)}
	}
}

// Update handles incoming lines, resize, and quit messages.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.sub.Close()

			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height

	case lineMsg:
		m.lines = append(m.lines, colorize(msg.line))
		if len(m.lines) > m.max {
			m.lines = m.lines[len(m.lines)-m.max:]
		}

		return m, m.readLine()

	case readDoneMsg:
		m.done = true
	}

	return m, nil
}

// View renders the newest lines that fit above a one-line status bar.
func (m *model) View() tea.View {
	height := m.height - 1
	if height < 1 {
		height = len(m.lines)
	}

	visible := m.lines
	if len(visible) > height {
		visible = visible[len(visible)-height:]
	}

	var b strings.Builder

	for _, line := range visible {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	state := "following"
	if m.done {
		state = "end of input"
	}

	fmt.Fprintf(&b, "%s [%s] press q to quit", m.source, state)

	v := tea.NewView(b.String())
	v.AltScreen = true

	return v
}

// severityStyles maps each severity to the style its lines render with.
// Info lines keep the terminal default.
var severityStyles = map[qlog.Level]qlog.Style{
	qlog.LevelDebug:   {Foreground: qlog.ColorCyan},
	qlog.LevelTrace:   {Foreground: qlog.ColorBlue},
	qlog.LevelWarning: {Foreground: qlog.ColorYellow},
	qlog.LevelError:   {Foreground: qlog.ColorRed, Bold: true},
}

// colorize wraps a line in the escape sequence for the severity its text
// mentions. Lines without a recognizable severity render unchanged.
func colorize(line string) string {
	level, ok := detectLevel(line)
	if !ok {
		return line
	}

	style, ok := severityStyles[level]
	if !ok {
		return line
	}

	return style.Escape() + line + qlog.StyleReset.Escape()
}

// severityTokens is ordered highest first so a line mentioning two
// severities takes the more urgent color.
var severityTokens = []struct {
	token string
	level qlog.Level
}{
	{"[EE]", qlog.LevelError},
	{"error", qlog.LevelError},
	{"[ww]", qlog.LevelWarning},
	{"warn", qlog.LevelWarning},
	{"[..]", qlog.LevelInfo},
	{"info", qlog.LevelInfo},
	{"trace", qlog.LevelTrace},
	{"debug", qlog.LevelDebug},
}

func detectLevel(line string) (qlog.Level, bool) {
	lower := strings.ToLower(line)

	for _, t := range severityTokens {
		if strings.Contains(lower, strings.ToLower(t.token)) {
			return t.level, true
		}
	}

	return 0, false
}
