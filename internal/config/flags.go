package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-d string   database file path
//	-t int      busy timeout in seconds
//	-l string   log level
//	-f string   log file
//	-clear      clear the screen between renders
//	-v          print build information and exit
//
// Only these flags are looked at; -c/-config and anything unknown is
// filtered out beforehand with flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-d", "-t", "-l", "-f"}, []string{"-clear", "-v"})

	fs := flag.NewFlagSet("diary", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "database file path")
	busyTimeout := fs.Int("t", int(cfg.BusyTimeout.Seconds()), "busy timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "f", cfg.LogFile, "log file (default stderr)")
	fs.BoolVar(&cfg.ClearScreen, "clear", cfg.ClearScreen, "clear the screen between renders")
	fs.BoolVar(&cfg.ShowVersion, "v", cfg.ShowVersion, "print build information and exit")

	if err := fs.Parse(filtered); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	// keep sub-second values from JSON or env unless -t was given
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.BusyTimeout = time.Duration(*busyTimeout) * time.Second
		}
	})
	return nil
}
