// Package config loads runtime configuration for the workplace CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJSON).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string        path of the SQLite database file
//	-s string        storage backend: sqlite or memory
//	-e string        log environment: local, development or production
//	-l string        log file (stderr when empty)
//	-debounce int    search debounce in milliseconds
//	-login-delay int delay between login and the first table, in milliseconds
//
// # JSON schema
//
// Durations accept Go duration strings or integer nanoseconds:
//
//	{
//	  "database_path": "workplace.db",
//	  "storage": "sqlite",
//	  "env": "production",
//	  "log_file": "workplace.log",
//	  "search_debounce": "200ms",
//	  "login_delay": "1.2s"
//	}
package config
