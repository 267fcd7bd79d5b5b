package sessions

import (
	"context"
	"sync"

	"github.com/KirkDiggler/aegis-tracker/internal/domain/narrative"
	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu      sync.RWMutex
	sheets  map[string]*sheet.CharacterSheet
	entries map[string][]narrative.Entry
}

// NewInMemoryRepository creates a new in-memory session repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		sheets:  make(map[string]*sheet.CharacterSheet),
		entries: make(map[string][]narrative.Entry),
	}
}

// GetSheet returns a copy of the stored sheet
func (r *inMemoryRepository) GetSheet(ctx context.Context, sessionID string) (*sheet.CharacterSheet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.sheets[sessionID]
	if !exists {
		return nil, apperr.NotFoundf("no sheet for session %s", sessionID).
			WithMeta("session_id", sessionID)
	}

	return s.Clone(), nil
}

// SaveSheet stores a copy of the sheet
func (r *inMemoryRepository) SaveSheet(ctx context.Context, sessionID string, s *sheet.CharacterSheet) error {
	if s == nil {
		return apperr.InvalidArgument("sheet cannot be nil")
	}
	if sessionID == "" {
		return apperr.InvalidArgument("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sheets[sessionID] = s.Clone()
	return nil
}

// AppendEntry adds an entry to the end of the session log
func (r *inMemoryRepository) AppendEntry(ctx context.Context, sessionID string, entry narrative.Entry) error {
	if !entry.IsValid() {
		return apperr.InvalidArgument("entry needs a role and text")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[sessionID] = append(r.entries[sessionID], entry)
	return nil
}

// ListEntries returns the session log oldest first
func (r *inMemoryRepository) ListEntries(ctx context.Context, sessionID string) ([]narrative.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]narrative.Entry{}, r.entries[sessionID]...), nil
}
