// Package config handles loading and parsing the splash configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/splash/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
// Example config.toml:
//
//	mode = "clf"
//	poll_seconds = 2
//	plugin_paths = ["~/plugins", "/opt/splash/plugins"]
//
// All fields are optional. Tilde expansion is performed on plugin paths.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), and TOML parsing errors. A
// missing config file is NOT an error; splash works out of the box without
// one.
//
// The package is read-only and stateless: configuration is loaded once at
// startup and returned as an immutable Config value.
package config
