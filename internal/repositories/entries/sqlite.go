package entries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/common"
	"github.com/dmitrijs2005/gophdiary/internal/dbx"
	"github.com/dmitrijs2005/gophdiary/internal/models"
	"github.com/google/uuid"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

// Create inserts the entry. Timestamps are stored as Unix nanoseconds.
func (r *SQLiteRepository) Create(ctx context.Context, e *models.Entry) error {
	id := e.ID
	if id == "" {
		id = uuid.NewString()
	}
	ts := e.Timestamp
	if ts.IsZero() {
		ts = r.now()
	}

	query := `INSERT INTO entries (id, content, created_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, id, e.Content, ts.UnixNano()); err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	e.ID = id
	e.Timestamp = ts
	return nil
}

// List selects entries newest first, optionally filtered with LIKE.
func (r *SQLiteRepository) List(ctx context.Context, filter string) ([]models.Entry, error) {
	query := `SELECT id, content, created_at FROM entries`
	var args []any
	if filter != "" {
		query += ` WHERE content LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(filter)+"%")
	}
	query += ` ORDER BY created_at DESC, rowid DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := make([]models.Entry, 0)
	for rows.Next() {
		var (
			item models.Entry
			ns   int64
		)
		if err := rows.Scan(&item.ID, &item.Content, &ns); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		item.Timestamp = time.Unix(0, ns)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return result, nil
}

// DeleteByID removes the row. It expects exactly one row to be affected.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("entry %s: %w", id, common.ErrorNotFound)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
