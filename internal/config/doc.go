// Package config handles loading and parsing the shelf configuration file.
//
// # Overview
//
// Both binaries read the same TOML file to discover the BookShelf Hub API
// root, the web listen address, and where to write logs. Every field is
// optional; shelf works out of the box against the public API.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/shelf/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. Non-empty SHELF_API_URL, SHELF_LISTEN, SHELF_LOG_LEVEL win over the file
//
// # Default Values
//
//   - API root: https://bookshelfhub.pythonanywhere.com
//   - Web listen address: 127.0.0.1:8080
//   - Log file: ~/.local/state/shelf/shelf.log
//   - Log level: info
//   - HTTP timeout: 10 seconds
//
// # TOML Format
//
//	api_url = "https://bookshelfhub.pythonanywhere.com"
//	listen = "127.0.0.1:8080"
//	log_file = "~/.local/state/shelf/shelf.log"
//	log_level = "info"
//	timeout_seconds = 10
//
// Tilde expansion is performed for the config path and log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
