package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/five82/shelf/internal/site"
)

var viewLabels = map[View]string{
	ViewHome:  "Home",
	ViewBooks: "Books",
	ViewLogs:  "Logs",
}

// renderHeader renders the brand, view tabs and load status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < 100

	settings := m.snapshot.Settings
	parts := []string{bg.Render(settings.SiteName(), styles.Logo)}
	if !compact {
		parts = append(parts, bg.Render(settings.Tagline(), styles.FaintText))
	}

	tabs := make([]string, 0, len(viewOrder))
	for _, v := range viewOrder {
		style := styles.MutedText
		if v == m.currentView {
			style = styles.AccentText.Bold(true)
		}
		tabs = append(tabs, bg.Render(viewLabels[v], style))
	}
	parts = append(parts, bg.Join(tabs, " │ "))

	parts = append(parts,
		bg.Render("Books:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d/%d", len(m.visible), len(m.snapshot.Books)), styles.Text))

	switch {
	case m.snapshot.Loading:
		parts = append(parts, bg.Render("Loading...", styles.WarningText.Bold(true)))
	case m.snapshot.HasError():
		maxErr := 80
		if compact {
			maxErr = 30
		}
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(m.snapshot.ErrorText(), maxErr), styles.DangerText))
	case !m.snapshot.LastUpdated.IsZero():
		parts = append(parts, bg.Render("updated "+humanize.Time(m.snapshot.LastUpdated), styles.MutedText))
	}

	if m.notice != "" {
		parts = append(parts,
			bg.Render("!", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(m.notice, styles.WarningText))
	}

	return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the key hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewHome:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"2", "Books"},
			{"L", "Logs"},
			{"r", "Reload"},
			{"?", "More"},
		}
	case ViewLogs:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"r", "Refresh"},
			{"esc", "Books"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"/", "Search"},
			{"[/]", m.query.SelectedGenre()},
			{"j/k", "Navigate"},
			{"o", "Download"},
			{"a", "Amazon"},
			{"y", "Copy"},
			{"r", "Reload"},
			{"?", "More"},
		}
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).MaxHeight(1).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderFooter renders the copyright line with the site name.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	line := truncate(site.Copyright(m.snapshot.Settings), max(m.width-2, 0))
	return styles.Footer.Width(m.width).MaxHeight(1).Render(line)
}
