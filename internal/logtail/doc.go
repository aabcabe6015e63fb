// Package logtail reads the tail of the shelf log file for the TUI log view.
//
// Read extracts the last N lines with a ring buffer in a single pass, so
// memory stays at O(maxLines) no matter how large the file grows:
//
//	lines, err := logtail.Read(cfg.LogFile, 400)
//
// Parse splits a logrus text-format line (time=... level=... msg="..." k=v)
// into an Entry so the UI can colour by level and dim the structured
// fields. Lines written by something other than logrus (panics, stray
// prints) come back as a bare message.
//
// Read returns nil, nil for a missing file. Other I/O errors are wrapped.
// Parse never fails.
package logtail
