// Package state owns the loaded catalog and the one round-trip that fills it.
//
// # Overview
//
// Store is the explicit state container shared by a loader and a view:
// loaded books, flattened settings, the loading flag, and the ordered list
// of load errors. Writers go through Begin and Finish; readers take a
// Snapshot, which is a deep copy.
//
//	Loader:                        View:
//	┌──────────────────┐          ┌──────────────────┐
//	│ store.Begin()    │          │ store.Snapshot() │
//	│ FetchBooks()  ─┐ │          │      ↓           │
//	│ FetchSettings()┘ │─────────→│ catalog.Filter() │
//	│ store.Finish()   │ (mutex)  │ snap.Phase()     │
//	└──────────────────┘          └──────────────────┘
//
// # Load Semantics
//
// Load issues the two requests concurrently and joins them before writing.
// Each source is judged on its own:
//
//   - books success=false records the server's error text, or
//     "Failed to fetch books" when there is none
//   - settings success=false records "Failed to fetch settings" and logs
//     the server's text
//   - a transport failure on either records "Error fetching data: <cause>"
//
// Errors are kept in source order (books, then settings), so the joined
// text is the same no matter which request finishes first. Finish runs on
// every path, so the loading flag never outlives the round-trip. A source
// that fails leaves its previous data in place.
//
// # Render Phase
//
// Snapshot.Phase picks what the book area shows, in fixed priority:
//
//	loading → error → empty → populated
//
// The same function drives both the terminal UI and the HTML page.
package state
