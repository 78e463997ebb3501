// Package services holds the diary's application logic on top of the
// repositories.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/common"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
	"github.com/dmitrijs2005/gophdiary/internal/models"
	"github.com/dmitrijs2005/gophdiary/internal/repositories/entries"
)

type EntryService interface {
	// Add trims content and stores it stamped with the current time.
	// Blank content is rejected with common.ErrorEmptyContent.
	Add(ctx context.Context, content string) (*models.Entry, error)

	// List returns entries newest first, restricted to those containing
	// filter when it is not empty.
	List(ctx context.Context, filter string) ([]models.Entry, error)

	// Delete permanently removes the entry with the given id.
	Delete(ctx context.Context, id string) error
}

type entryService struct {
	repo entries.Repository
	log  logging.Logger
	now  func() time.Time
}

// Option customizes an EntryService.
type Option func(*entryService)

// WithClock overrides the time source used to stamp new entries.
func WithClock(now func() time.Time) Option {
	return func(s *entryService) { s.now = now }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(s *entryService) { s.log = l }
}

func NewEntryService(repo entries.Repository, opts ...Option) EntryService {
	s := &entryService{repo: repo, log: logging.Nop(), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *entryService) Add(ctx context.Context, content string) (*models.Entry, error) {
	e := models.NewEntry(content, s.now())
	if e.IsBlank() {
		return nil, common.ErrorEmptyContent
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("saving error: %w", err)
	}

	s.log.Debug(ctx, "entry saved", "id", e.ID)
	return e, nil
}

func (s *entryService) List(ctx context.Context, filter string) ([]models.Entry, error) {
	list, err := s.repo.List(ctx, strings.TrimSpace(filter))
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return list, nil
}

func (s *entryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting entry: %w", err)
	}
	s.log.Debug(ctx, "entry deleted", "id", id)
	return nil
}
