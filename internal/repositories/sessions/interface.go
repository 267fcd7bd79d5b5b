package sessions

//go:generate mockgen -destination=mock/mock_repository.go -package=mocksessions -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/aegis-tracker/internal/domain/narrative"
	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
)

// Repository stores the live sheet and narrative of a session.
// GetSheet returns a NotFound error when nothing was saved for the session yet.
type Repository interface {
	GetSheet(ctx context.Context, sessionID string) (*sheet.CharacterSheet, error)
	SaveSheet(ctx context.Context, sessionID string, s *sheet.CharacterSheet) error
	AppendEntry(ctx context.Context, sessionID string, entry narrative.Entry) error
	ListEntries(ctx context.Context, sessionID string) ([]narrative.Entry, error)
}
