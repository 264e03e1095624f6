package config

import (
	"os"
	"time"
)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config holds runtime settings for the CLI.
type Config struct {
	DatabasePath   string
	Storage        string
	Env            string
	LogFile        string
	SearchDebounce time.Duration
	LoginDelay     time.Duration
}

// LoadDefaults populates c with the defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "workplace.db"
	c.Storage = StorageSQLite
	c.Env = "production"
	c.LogFile = ""
	c.SearchDebounce = 200 * time.Millisecond
	c.LoginDelay = 1200 * time.Millisecond
}

// Load builds a Config from defaults, then the JSON file named in args (if
// any), then the flags in args. It panics on an unreadable config file or a
// malformed flag.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

// LoadConfig is Load over the process arguments.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}
