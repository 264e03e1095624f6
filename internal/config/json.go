package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/workplace/internal/flagx"
	"github.com/dmitrijs2005/workplace/internal/timex"
)

// jsonConfig is the on-disk shape of the config file. Pointer fields tell
// "absent" from "zero", so a partial file only overrides what it names.
type jsonConfig struct {
	DatabasePath   *string         `json:"database_path"`
	Storage        *string         `json:"storage"`
	Env            *string         `json:"env"`
	LogFile        *string         `json:"log_file"`
	SearchDebounce *timex.Duration `json:"search_debounce"`
	LoginDelay     *timex.Duration `json:"login_delay"`
}

// parseJSON overlays cfg with the file given by -c / -config. Nothing happens
// when no file is named; read or decode errors panic.
func parseJSON(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.Storage != nil {
		cfg.Storage = *jc.Storage
	}
	if jc.Env != nil {
		cfg.Env = *jc.Env
	}
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
	if jc.SearchDebounce != nil {
		cfg.SearchDebounce = jc.SearchDebounce.Duration
	}
	if jc.LoginDelay != nil {
		cfg.LoginDelay = jc.LoginDelay.Duration
	}
}
