// Package catalog is the client side of the BookShelf Hub API.
//
// # Overview
//
// The API exposes two read endpoints rooted at a configurable base URL:
//
//	GET {base}/books     → {"success": bool, "books": [...], "error": "..."}
//	GET {base}/settings  → {"success": bool, "settings": {"key": {"value": "..."}}, "error": "..."}
//
// Client performs those reads; the payload types mirror the JSON exactly.
// A response with success=false is a normal return value, not a Go error:
// only transport problems (connection failures, HTTP status >= 400,
// undecodable bodies) come back as errors.
//
// # Settings
//
// The settings payload wraps every value in an object. Flatten unwraps it
// into Settings, a plain map with accessors that apply the site's fallback
// text when a key is missing or blank (site_name falls back to
// "BookShelf Hub", and so on).
//
// # Filtering
//
// Filter is the one piece of view logic shared by every front end. It is
// pure: the result depends only on the books and the Query, the input
// slice is never modified, and the result never aliases it. Matching is a
// case-folded substring test on title or author combined with an exact
// genre test, where the AllGenres sentinel disables the genre test.
//
// # Errors
//
// SourceError carries the user-facing message for a failed request along
// with the source (books or settings) and kind (application or transport),
// so callers can collect failures in a fixed order and render them with
// JoinErrors.
package catalog
