package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/logtail"
)

// updateLogViewport sizes the log viewport and rebuilds its content.
func (m *Model) updateLogViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}
	w := max(m.width-4, 10)
	h := max(m.contentHeight()-2, 1)
	if m.logViewport.Width == 0 {
		m.logViewport = viewport.New(w, h)
	}
	m.logViewport.Width = w
	m.logViewport.Height = h
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.logViewport.SetContent(m.renderLogContent(w))
}

// renderLogs renders the log view.
func (m Model) renderLogs() string {
	title := "Log"
	if m.logPath != "" {
		title = "Log · " + m.logPath
	}
	return m.renderTitledBox(title, m.logViewport.View(), m.width, m.contentHeight(), true)
}

// renderLogContent renders parsed log entries, coloured by level.
func (m Model) renderLogContent(width int) string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()

	switch {
	case m.logErr != nil:
		return bg.FillLine(bg.Render("Unable to read log: "+m.logErr.Error(), styles.DangerText), width)
	case m.logPath == "":
		return bg.FillLine(bg.Render("No log file configured", styles.MutedText), width)
	case len(m.logEntries) == 0:
		return bg.FillLine(bg.Render("No log entries", styles.MutedText), width)
	}

	lines := make([]string, 0, len(m.logEntries))
	for i, e := range m.logEntries {
		content := bg.Render(fmt.Sprintf("%4d │ ", i+1), styles.FaintText) + m.formatLogEntry(e, styles, bg)
		lines = append(lines, bg.FillLine(content, width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) formatLogEntry(e logtail.Entry, styles Styles, bg BgStyle) string {
	if e.Level == "" {
		return bg.Render(e.Message, styles.Text)
	}

	var b strings.Builder
	if e.Time != "" {
		b.WriteString(bg.Render(shortTime(e.Time), styles.FaintText))
		b.WriteString(bg.Space())
	}
	b.WriteString(bg.Render(padRight(strings.ToUpper(e.Level), 7), m.levelStyle(e.Level, styles).Bold(true)))
	b.WriteString(bg.Render(e.Message, styles.Text))
	for _, f := range e.Fields {
		b.WriteString(bg.Space())
		b.WriteString(bg.Render(f.Key+"=", styles.FaintText))
		b.WriteString(bg.Render(f.Value, styles.MutedText))
	}
	return b.String()
}

// levelStyle returns the style for a logrus level name.
func (m Model) levelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "info":
		return styles.SuccessText
	case "warning":
		return styles.WarningText
	case "error", "fatal", "panic":
		return styles.DangerText
	case "debug", "trace":
		return styles.InfoText
	default:
		return styles.Text
	}
}

// shortTime keeps the clock part of an RFC3339 timestamp.
func shortTime(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 && len(ts) >= i+9 {
		return ts[i+1 : i+9]
	}
	return ts
}
