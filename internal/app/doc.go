// Package app is the composition root for the shelf terminal client.
//
// Run loads configuration, points logrus at the log file, builds the
// catalog client and an empty state.Store, restores the saved theme and
// genre, and hands everything to the Bubble Tea UI. The UI issues the
// single catalog load on start; there is no background polling.
//
// Fatal errors (returned from Run):
//   - Configuration file present but unreadable or invalid TOML
//   - Log file cannot be created
//   - Catalog API URL is malformed
//
// Catalog request failures are not fatal. They are recorded in the store
// and shown in the book area.
package app
