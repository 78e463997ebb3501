package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

// Config holds runtime settings for the diary CLI.
//
// Fields:
//   - DatabasePath: SQLite file holding the entries (":memory:" for a throwaway diary).
//   - BusyTimeout: how long SQLite waits on a locked database file.
//   - LogLevel: debug, info, warn or error.
//   - LogFile: append log records here instead of stderr.
//   - ClearScreen: clear the terminal before each menu and entry render.
//   - ShowVersion: print build information and exit.
type Config struct {
	DatabasePath string
	BusyTimeout  time.Duration
	LogLevel     string
	LogFile      string
	ClearScreen  bool
	ShowVersion  bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "diary.db"
	c.BusyTimeout = 5 * time.Second
	c.LogLevel = "error"
	c.LogFile = ""
	c.ClearScreen = true
	c.ShowVersion = false
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.BusyTimeout < 0 {
		return fmt.Errorf("busy timeout must not be negative")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadConfig constructs a Config from args (usually os.Args[1:]): defaults
// first, then the .env file and process environment, then the JSON file named
// by -c/-config, then command-line flags. Later sources take precedence.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, DotEnvFile, osLookup); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
