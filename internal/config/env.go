package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

const (
	envDatabase    = "DIARY_DB"
	envBusyTimeout = "DIARY_BUSY_TIMEOUT"
	envLogLevel    = "DIARY_LOG_LEVEL"
	envLogFile     = "DIARY_LOG_FILE"
	envClear       = "DIARY_CLEAR"
)

type lookupFunc func(key string) (string, bool)

func osLookup(key string) (string, bool) { return os.LookupEnv(key) }

// parseEnv overlays cfg with DIARY_* variables. Values from the dotenv file
// are used only where lookup does not know the key, so the real environment
// wins over the file. A missing dotenv file is not an error.
func parseEnv(cfg *Config, dotenvPath string, lookup lookupFunc) error {
	fileVars := map[string]string{}
	if dotenvPath != "" {
		vars, err := godotenv.Read(dotenvPath)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("failed to read %s: %w", dotenvPath, err)
		}
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	if v, ok := get(envDatabase); ok {
		cfg.DatabasePath = v
	}
	if v, ok := get(envBusyTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envBusyTimeout, err)
		}
		cfg.BusyTimeout = d
	}
	if v, ok := get(envLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := get(envLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := get(envClear); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envClear, err)
		}
		cfg.ClearScreen = b
	}
	return nil
}
