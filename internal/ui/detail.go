package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/site"
)

// renderBookDetail renders the card for one book: title, author, genre
// badge, rating, description, cover and the links that are present.
func (m Model) renderBookDetail(b catalog.Book, width int) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.SurfaceAlt)
	width = max(width, 10)

	var lines []string
	lines = append(lines, "")
	for _, l := range wrap(b.Title, width) {
		lines = append(lines, bg.Render(l, styles.Text.Bold(true)))
	}
	lines = append(lines, bg.Render("by "+b.Author, styles.MutedText))
	lines = append(lines, "")

	meta := styles.GenreStyle(b.Genre).Render(b.Genre) + bg.Spaces(2) +
		bg.Render(formatRating(b.Rating), styles.WarningText) + bg.Space() +
		bg.Render(formatReviews(b.Reviews), styles.FaintText)
	lines = append(lines, meta, "")

	for _, l := range wrap(b.PlainDescription(), width) {
		lines = append(lines, bg.Render(l, styles.Text))
	}
	lines = append(lines, "")

	lines = append(lines, m.detailField("Cover", m.covers(b), width, bg, styles))
	if b.HasDownload() {
		lines = append(lines, m.detailField(site.DownloadLabel, b.ContentLockerLink, width, bg, styles))
	}
	if b.HasPurchase() {
		lines = append(lines, m.detailField(site.PurchaseLabel, b.AmazonLink, width, bg, styles))
	}

	var hints []string
	if b.HasDownload() {
		hints = append(hints, "o download")
	}
	if b.HasPurchase() {
		hints = append(hints, "a amazon")
	}
	if len(hints) > 0 {
		hints = append(hints, "y copy")
		lines = append(lines, "", bg.Render(strings.Join(hints, " · "), styles.AccentText))
	}

	return strings.Join(lines, "\n")
}

func (m Model) detailField(label, value string, width int, bg BgStyle, styles Styles) string {
	label = padRight(label, 18)
	return bg.Render(label, styles.MutedText) +
		bg.Render(truncate(value, max(width-lipgloss.Width(label), 8)), styles.InfoText)
}
