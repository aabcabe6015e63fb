package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/state"
)

// refilter recomputes the visible books from the snapshot and query,
// keeping the selection on the same book when it is still visible.
func (m *Model) refilter() {
	var selectedID int64
	if b := m.selectedBook(); b != nil {
		selectedID = b.ID
	}

	m.visible = catalog.Filter(m.snapshot.Books, m.query)

	if len(m.visible) == 0 {
		m.selectedRow = 0
		return
	}
	if selectedID != 0 {
		for i, b := range m.visible {
			if b.ID == selectedID {
				m.selectedRow = i
				return
			}
		}
	}
	if m.selectedRow >= len(m.visible) {
		m.selectedRow = len(m.visible) - 1
	}
}

// selectedBook returns the highlighted book, or nil when nothing is visible.
func (m Model) selectedBook() *catalog.Book {
	if m.selectedRow < 0 || m.selectedRow >= len(m.visible) {
		return nil
	}
	return &m.visible[m.selectedRow]
}

// phase is the book-area state for what is currently visible.
func (m Model) phase() state.Phase {
	return m.snapshot.Phase(m.visible)
}

// handleBooksKey processes keyboard input for the books view.
func (m Model) handleBooksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.NextGenre):
		m.query.Genre = catalog.NextGenre(m.query.SelectedGenre())
		m.refilter()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.PrevGenre):
		m.query.Genre = catalog.PrevGenre(m.query.SelectedGenre())
		m.refilter()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.OpenDownload):
		if b := m.selectedBook(); b != nil && b.HasDownload() {
			return m, openURLCmd(m.openURL, b.ContentLockerLink)
		}
		m.notice = "No free download for this book"
		return m, nil

	case key.Matches(msg, m.keys.OpenPurchase):
		if b := m.selectedBook(); b != nil && b.HasPurchase() {
			return m, openURLCmd(m.openURL, b.AmazonLink)
		}
		m.notice = "No Amazon link for this book"
		return m, nil

	case key.Matches(msg, m.keys.CopyLink):
		if b := m.selectedBook(); b != nil {
			if link := preferredLink(*b); link != "" {
				return m, copyCmd(m.copyText, link)
			}
		}
		m.notice = "Nothing to copy"
		return m, nil
	}

	count := len(m.visible)
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = count - 1
	}

	return m, nil
}

// handleSearchInput feeds keys to the search box. The filter follows every
// keystroke; enter keeps the text, esc clears it.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.query.Search = ""
		m.refilter()
		return m, nil

	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if v := m.searchInput.Value(); v != m.query.Search {
		m.query.Search = v
		m.refilter()
	}
	return m, cmd
}

// renderBooks renders the search bar, genre chips and the book area.
func (m Model) renderBooks() string {
	styles := m.theme.Styles()
	height := m.contentHeight()

	search := m.renderSearchBar(styles)
	chips := m.renderGenreChips()
	areaHeight := max(height-2, 3)

	phase := m.phase()
	if phase != state.PhasePopulated {
		style := styles.MutedText
		if phase == state.PhaseError {
			style = styles.DangerText
		}
		msg := style.Render(truncate(m.snapshot.PhaseMessage(phase), m.width-4))
		area := lipgloss.Place(m.width, areaHeight, lipgloss.Center, lipgloss.Center, msg)
		return search + "\n" + chips + "\n" + area
	}

	// Extra wide (>= 160): 35% list, 65% detail. Default: 45% / 55%.
	var listWidth int
	if m.width >= 160 {
		listWidth = m.width * 35 / 100
	} else {
		listWidth = m.width * 45 / 100
	}
	detailWidth := m.width - listWidth

	listTitle := fmt.Sprintf("%s (%d)", m.query.SelectedGenre(), len(m.visible))
	listContent := m.renderBookList(listWidth-2, areaHeight-2)
	listPane := m.renderTitledBox(listTitle, listContent, listWidth, areaHeight, true)

	var detailContent string
	if b := m.selectedBook(); b != nil {
		detailContent = m.renderBookDetail(*b, detailWidth-4)
	}
	detailPane := m.renderTitledBox("Details", detailContent, detailWidth, areaHeight, false)

	return search + "\n" + chips + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

func (m Model) renderSearchBar(styles Styles) string {
	if m.searching || m.query.Search != "" {
		return styles.Text.Width(m.width).Render(m.searchInput.View())
	}
	return styles.FaintText.Width(m.width).Render("/ Search books or authors...")
}

// renderGenreChips renders the genre selector on one line, selected chip
// highlighted. Chips that do not fit are dropped from the end.
func (m Model) renderGenreChips() string {
	styles := m.theme.Styles()
	selected := m.query.SelectedGenre()

	var parts []string
	used := 0
	for _, g := range catalog.Genres {
		label := " " + g + " "
		var chip string
		if g == selected {
			chip = styles.Selected.Render(label)
		} else {
			chip = styles.MutedText.Render(label)
		}
		w := lipgloss.Width(chip) + 1
		if used+w > m.width && len(parts) > 0 {
			break
		}
		parts = append(parts, chip)
		used += w
	}
	return strings.Join(parts, " ")
}

// renderBookList renders the visible books as rows, scrolled so the
// selection stays on screen.
func (m Model) renderBookList(width, height int) string {
	if height <= 0 {
		return ""
	}
	start := 0
	if m.selectedRow >= height {
		start = m.selectedRow - height + 1
	}
	end := min(start+height, len(m.visible))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.formatBookRow(m.visible[i], width, i == m.selectedRow))
	}
	return strings.Join(lines, "\n")
}

// formatBookRow formats "Title · Author  ★ 4.5".
// Selected rows use SelectionText for every part to keep contrast.
func (m Model) formatBookRow(b catalog.Book, width int, selected bool) string {
	bgColor := m.theme.FocusBg
	if selected {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)

	rating := formatRating(b.Rating)
	titleWidth := max(width-len([]rune(rating))-len([]rune(b.Author))-5, 10)

	var titleStyle, authorStyle, ratingStyle lipgloss.Style
	if selected {
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		titleStyle, authorStyle, ratingStyle = sel, sel, sel
	} else {
		styles := m.theme.Styles()
		titleStyle = styles.Text
		authorStyle = styles.MutedText
		ratingStyle = styles.WarningText
	}

	content := bg.Render(truncate(b.Title, titleWidth), titleStyle) +
		bg.Render(" · ", authorStyle) +
		bg.Render(truncate(b.Author, max(width-titleWidth-len([]rune(rating))-5, 6)), authorStyle) +
		bg.Spaces(2) +
		bg.Render(rating, ratingStyle)

	return bg.FillLine(content, width)
}
