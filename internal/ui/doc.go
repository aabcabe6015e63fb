// Package ui provides the Bubble Tea terminal front end for shelf.
//
// # Views
//
//   - Home: hero, trust stats, How It Works and the FAQ, scrollable
//   - Books: search box, genre chips, book list and a detail pane
//   - Logs: tail of the shelf log file, coloured by level
//
// Header and footer are shared by every view; both show the site name from
// the settings endpoint, falling back to the built-in default.
//
// # Data Flow
//
// Init issues one load (state.Load) as a tea.Cmd. When it finishes the
// model copies store.Snapshot() and recomputes the visible books with
// catalog.Filter. Search and genre changes only refilter; they never touch
// the network. r starts another load unless one is already running.
//
// The book area always shows exactly one state, chosen by
// state.Snapshot.Phase in fixed priority: loading, error, empty, populated.
//
// # Side Effects
//
// o and a open the selected book's links in the system browser; y copies a
// link with atotto/clipboard. Both run as commands and report back through
// the header notice. Theme and genre choices are saved to prefs.toml.
//
// # Key Bindings
//
// See keys.go. Press ? inside the app for the full list.
package ui
