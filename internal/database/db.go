// Package database opens the diary's SQLite file and wires the repositories
// on top of it.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/filex"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
	"github.com/dmitrijs2005/gophdiary/internal/migrations"
	"github.com/dmitrijs2005/gophdiary/internal/repositories/entries"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Repositories bundles the repositories backed by one database handle.
type Repositories struct {
	DB      *sql.DB
	Entries entries.Repository
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Options tune how the database is opened.
type Options struct {
	// BusyTimeout bounds how long SQLite waits on a locked database file.
	BusyTimeout time.Duration
	Logger      logging.Logger
}

// RunMigrations applies the embedded goose migrations. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB, log logging.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{ctx: ctx, log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Open opens (creating if absent) the SQLite database at path, applies the
// schema and returns the repositories bound to it.
func Open(ctx context.Context, path string, opts Options) (*Repositories, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	if path != MemoryDSN {
		if err := filex.EnsureParentDir(path); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer, and :memory: is per connection.
	db.SetMaxOpenConns(1)

	if opts.BusyTimeout > 0 {
		pragma := fmt.Sprintf("PRAGMA busy_timeout = %d", opts.BusyTimeout.Milliseconds())
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set busy timeout: %w", err)
		}
	}

	if err := RunMigrations(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info(ctx, "database opened", "path", path)

	return &Repositories{
		DB:      db,
		Entries: entries.NewSQLiteRepository(db),
	}, nil
}

// gooseLogger routes goose output through the application logger.
type gooseLogger struct {
	ctx context.Context
	log logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info(g.ctx, "migrate", "detail", fmt.Sprintf(format, v...))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(g.ctx, "migrate", "detail", fmt.Sprintf(format, v...))
	os.Exit(1)
}
