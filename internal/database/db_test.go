package database

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/logging"
	"github.com/dmitrijs2005/gophdiary/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpen_CreatesFileAndSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "diary.db")

	repos, err := Open(ctx, path, Options{BusyTimeout: time.Second})
	require.NoError(t, err)
	defer repos.Close()

	_, err = os.Stat(path)
	require.NoError(t, err)
	assert.True(t, tableExists(t, repos.DB, "entries"))
	assert.True(t, tableExists(t, repos.DB, "goose_db_version"))

	var timeout int
	require.NoError(t, repos.DB.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout))
	assert.Equal(t, 1000, timeout)
}

func TestOpen_IsIdempotentAndKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "diary.db")

	repos, err := Open(ctx, path, Options{})
	require.NoError(t, err)
	require.NoError(t, repos.Entries.Create(ctx, &models.Entry{Content: "persisted", Timestamp: time.Now()}))
	require.NoError(t, repos.Close())

	repos, err = Open(ctx, path, Options{})
	require.NoError(t, err)
	defer repos.Close()

	got, err := repos.Entries.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "persisted", got[0].Content)
}

func TestOpen_InMemory(t *testing.T) {
	ctx := context.Background()
	repos, err := Open(ctx, MemoryDSN, Options{})
	require.NoError(t, err)
	defer repos.Close()

	require.NoError(t, repos.Entries.Create(ctx, &models.Entry{Content: "a"}))
	got, err := repos.Entries.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRunMigrations_LogsThroughLogger(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", MemoryDSN)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	require.NoError(t, RunMigrations(ctx, db, log))
	require.NoError(t, RunMigrations(ctx, db, log))

	assert.Contains(t, buf.String(), "msg=migrate")
	assert.True(t, tableExists(t, db, "entries"))
}

func TestOpen_BadDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := Open(context.Background(), filepath.Join(file, "diary.db"), Options{})
	require.Error(t, err)
}
