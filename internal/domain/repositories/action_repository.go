package repositories

import (
	"context"

	"github.com/johnquangdev/teamsync/internal/domain/entities"
)

// ActionRepository persists action items and tracks their IDs for enumeration
type ActionRepository interface {
	// CreateBatch persists the items and appends all their IDs to the action
	// index in one atomic append
	CreateBatch(ctx context.Context, items []*entities.ActionItem) error

	// Update overwrites an existing action item (no index side effects)
	Update(ctx context.Context, item *entities.ActionItem) error

	// FindByID retrieves an action item, or ErrKeyNotFound
	FindByID(ctx context.Context, id string) (*entities.ActionItem, error)

	// ListAll enumerates every stored action item via the ID index, dropping
	// IDs whose entries are missing
	ListAll(ctx context.Context) ([]*entities.ActionItem, error)
}
