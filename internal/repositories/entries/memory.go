package entries

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/common"
	"github.com/dmitrijs2005/gophdiary/internal/models"
	"github.com/google/uuid"
)

// MemoryRepository is a Repository kept in process memory. It orders entries
// like SQLiteRepository; its filter folds Unicode case where SQLite's LIKE
// folds ASCII only. It is not safe for concurrent use.
type MemoryRepository struct {
	items []models.Entry
	now   func() time.Time
}

// NewMemoryRepository returns an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

func (r *MemoryRepository) Create(ctx context.Context, e *models.Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = r.now()
	}
	r.items = append(r.items, *e)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context, filter string) ([]models.Entry, error) {
	needle := strings.ToLower(filter)
	result := make([]models.Entry, 0, len(r.items))
	// walk backwards so that equal timestamps keep newest-inserted first
	for i := len(r.items) - 1; i >= 0; i-- {
		e := r.items[i]
		if needle != "" && !strings.Contains(strings.ToLower(e.Content), needle) {
			continue
		}
		result = append(result, e)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	return result, nil
}

func (r *MemoryRepository) DeleteByID(ctx context.Context, id string) error {
	for i, e := range r.items {
		if e.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("entry %s: %w", id, common.ErrorNotFound)
}

// Len returns the number of stored entries.
func (r *MemoryRepository) Len() int {
	return len(r.items)
}
