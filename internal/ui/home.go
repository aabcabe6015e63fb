package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/site"
)

// updateHomeViewport sizes the home viewport and rebuilds its content.
func (m *Model) updateHomeViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}
	w := max(m.width-4, 10)
	h := max(m.contentHeight()-2, 1)
	if m.homeViewport.Width == 0 {
		m.homeViewport = viewport.New(w, h)
	}
	m.homeViewport.Width = w
	m.homeViewport.Height = h
	m.homeViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.SurfaceAlt))
	m.homeViewport.SetContent(m.renderHomeContent(w))
}

// renderHome renders the scrollable landing page.
func (m Model) renderHome() string {
	return m.renderTitledBox("Home", m.homeViewport.View(), m.width, m.contentHeight(), true)
}

// renderHomeContent lays out hero, trust stats, how it works and the FAQ.
func (m Model) renderHomeContent(width int) string {
	styles := m.theme.Styles()
	settings := m.snapshot.Settings
	heading := styles.AccentText.Bold(true)

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
	}
	para := func(text string, style lipgloss.Style) {
		for _, l := range wrap(text, width) {
			line(style.Render(l))
		}
	}

	// Hero
	line("")
	para(settings.Tagline(), styles.Logo)
	line("")
	para(settings.HeroDescription(), styles.Text)
	line("")
	line(styles.Selected.Render(" "+site.CTAFreeBooks+" ") + "  " + styles.Selected.Render(" "+site.CTABrowse+" ") +
		styles.FaintText.Render("  press 2"))
	line("")

	// Trust indicators
	stats := site.Stats(settings)
	cells := make([]string, 0, len(stats))
	for _, s := range stats {
		cells = append(cells, styles.Text.Bold(true).Render(s.Value)+" "+styles.MutedText.Render(s.Label))
	}
	line(strings.Join(cells, styles.FaintText.Render("  •  ")))
	line("")

	// How it works
	line(heading.Render("How It Works"))
	para(site.HowItWorksIntro, styles.MutedText)
	line("")
	for _, opt := range site.Options {
		line(styles.Text.Bold(true).Render(opt.Title))
		para(opt.Subtitle, styles.FaintText)
		for i, step := range opt.Steps {
			line(fmt.Sprintf("  %s %s", styles.SuccessText.Render(fmt.Sprintf("%d.", i+1)), styles.Text.Render(step.Title)))
			line("     " + styles.MutedText.Render(step.Body))
		}
		line("")
	}
	para("Disclosure: "+site.Disclosure, styles.FaintText)
	line("")

	// FAQ
	line(heading.Render("Frequently Asked Questions"))
	para(site.FAQIntro, styles.MutedText)
	line("")
	for _, qa := range site.FAQ {
		para(qa.Question, styles.Text.Bold(true))
		para(qa.Answer, styles.MutedText)
		line("")
	}

	// Footer blurb
	line(styles.Logo.Render(settings.SiteName()))
	para(settings.FooterDescription(), styles.MutedText)
	line(styles.FaintText.Render(strings.Join(site.TrustBadges(settings), "  •  ")))

	return strings.TrimRight(b.String(), "\n")
}
