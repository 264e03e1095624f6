package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/workplace/internal/flagx"
)

var knownFlags = []string{"-d", "-s", "-e", "-l", "-debounce", "-login-delay"}

// parseFlags overlays cfg with the flags it knows about; other arguments
// (such as -c) are filtered out first. It panics on a malformed value or an
// unknown storage backend.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("workplace", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the SQLite database file")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend (sqlite|memory)")
	fs.StringVar(&cfg.Env, "e", cfg.Env, "log environment (local|development|production)")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file, stderr when empty")
	debounce := fs.Int("debounce", int(cfg.SearchDebounce.Milliseconds()), "search debounce (ms)")
	loginDelay := fs.Int("login-delay", int(cfg.LoginDelay.Milliseconds()), "delay after login (ms)")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}

	switch cfg.Storage {
	case StorageSQLite, StorageMemory:
	default:
		panic(fmt.Sprintf("unknown storage backend %q", cfg.Storage))
	}

	cfg.SearchDebounce = time.Duration(*debounce) * time.Millisecond
	cfg.LoginDelay = time.Duration(*loginDelay) * time.Millisecond
}
