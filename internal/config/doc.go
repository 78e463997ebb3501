// Package config loads runtime configuration for the diary CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. An optional .env file in the working directory, then the process
//     environment (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// # Environment
//
//	DIARY_DB            database file path
//	DIARY_BUSY_TIMEOUT  Go duration, e.g. "5s"
//	DIARY_LOG_LEVEL     debug | info | warn | error
//	DIARY_LOG_FILE      log file path
//	DIARY_CLEAR         true | false
//
// # Supported flags
//
//	-d string   database file path
//	-t int      busy timeout (seconds)
//	-l string   log level
//	-f string   log file
//	-clear      clear the screen between renders (default true)
//	-v          print build information and exit
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the busy timeout, so it may be a
// string like "5s" or integer nanoseconds. Absent keys keep earlier values:
//
//	{
//	  "database_path": "/home/me/.diary.db",
//	  "busy_timeout": "5s",
//	  "log_level": "info",
//	  "log_file": "/tmp/diary.log",
//	  "clear_screen": false
//	}
package config
