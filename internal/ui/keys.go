package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding
	Reload     key.Binding

	// View switching
	ViewHome  key.Binding
	ViewBooks key.Binding
	ViewLogs  key.Binding

	// Books actions
	Search       key.Binding
	NextGenre    key.Binding
	PrevGenre    key.Binding
	OpenDownload key.Binding
	OpenPurchase key.Binding
	CopyLink     key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Search/input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Cycle views"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Cycle views (reverse)"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to books"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload"),
		),

		// View switching
		ViewHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Home view"),
		),
		ViewBooks: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Books view"),
		),
		ViewLogs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Log view"),
		),

		// Books actions
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search books or authors"),
		),
		NextGenre: key.NewBinding(
			key.WithKeys("]", "f"),
			key.WithHelp("]/f", "Next genre"),
		),
		PrevGenre: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Previous genre"),
		),
		OpenDownload: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Open free download"),
		),
		OpenPurchase: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Open on Amazon"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy link"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		// Search/input
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings grouped the way the help overlay shows them.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Tab, k.ViewHome, k.ViewBooks, k.ViewLogs, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom},
		// Books
		{k.Search, k.NextGenre, k.PrevGenre, k.OpenDownload, k.OpenPurchase, k.CopyLink},
		// General
		{k.Reload, k.CycleTheme, k.Help, k.Quit},
	}
}
