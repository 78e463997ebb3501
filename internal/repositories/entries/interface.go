package entries

import (
	"context"

	"github.com/dmitrijs2005/gophdiary/internal/models"
)

// Repository describes the storage operations the diary needs.
type Repository interface {
	// Create stores a new entry. It assigns entry.ID, and entry.Timestamp when
	// the timestamp is zero.
	Create(ctx context.Context, entry *models.Entry) error

	// List returns entries ordered by timestamp descending. A non-empty filter
	// keeps only entries whose content contains it, case-insensitively.
	List(ctx context.Context, filter string) ([]models.Entry, error)

	// DeleteByID removes an entry permanently. It returns common.ErrorNotFound
	// when no entry has that id.
	DeleteByID(ctx context.Context, id string) error
}
