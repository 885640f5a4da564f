package repositories

import (
	"context"

	"github.com/johnquangdev/teamsync/internal/domain/entities"
)

// MeetingRepository persists meetings and tracks their IDs for enumeration
type MeetingRepository interface {
	// Create persists a new meeting and appends its ID to the meeting index
	Create(ctx context.Context, meeting *entities.Meeting) error

	// Update overwrites an existing meeting (no index side effects)
	Update(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting, or ErrKeyNotFound
	FindByID(ctx context.Context, id string) (*entities.Meeting, error)

	// ListAll enumerates every stored meeting via the ID index
	ListAll(ctx context.Context) ([]*entities.Meeting, error)
}
