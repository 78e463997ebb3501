package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	base := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		expected *Config
		name     string
		args     []string
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-d", "/tmp/x.db", "-t", "10", "-l", "debug", "-f", "/tmp/d.log", "-clear=false", "-v"},
			expected: &Config{DatabasePath: "/tmp/x.db", BusyTimeout: 10 * time.Second, LogLevel: "debug",
				LogFile: "/tmp/d.log", ClearScreen: false, ShowVersion: true},
		},
		{
			name:     "unrelated flags ignored",
			args:     []string{"-c", "cfg.json", "-x", "1"},
			expected: base(),
		},
		{
			name:    "incorrect timeout",
			args:    []string{"-t", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseFlags_KeepsSubSecondTimeoutWithoutFlag(t *testing.T) {
	cfg := &Config{BusyTimeout: 1500 * time.Millisecond}
	require.NoError(t, parseFlags(cfg, []string{"-d", "a.db"}))
	assert.Equal(t, 1500*time.Millisecond, cfg.BusyTimeout)
}
