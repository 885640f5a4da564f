package repository

import (
	"context"
	"encoding/json"
	"errors"

	apperrors "github.com/johnquangdev/teamsync/errors"
	"github.com/johnquangdev/teamsync/internal/domain/entities"
	"github.com/johnquangdev/teamsync/internal/domain/repositories"
)

const (
	actionCollection = "actions"
	actionIndex      = "action_ids"
)

// actionRepository implements the ActionRepository interface over the
// key-value state store
type actionRepository struct {
	store repositories.StateStore
}

// NewActionRepository creates a new action item repository
func NewActionRepository(store repositories.StateStore) repositories.ActionRepository {
	return &actionRepository{store: store}
}

// CreateBatch persists the items, then appends every ID to the action index
// in a single atomic append
func (r *actionRepository) CreateBatch(ctx context.Context, items []*entities.ActionItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		value, err := json.Marshal(item)
		if err != nil {
			return err
		}
		if err := r.store.Set(ctx, actionCollection, item.ID, value); err != nil {
			return apperrors.ErrStoreFailed("create action item", err)
		}
		ids = append(ids, item.ID)
	}

	if err := r.store.AppendIndex(ctx, actionIndex, ids...); err != nil {
		return apperrors.ErrStoreFailed("index action items", err)
	}
	return nil
}

// Update overwrites an existing action item
func (r *actionRepository) Update(ctx context.Context, item *entities.ActionItem) error {
	value, err := json.Marshal(item)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, actionCollection, item.ID, value); err != nil {
		return apperrors.ErrStoreFailed("update action item", err)
	}
	return nil
}

// FindByID retrieves an action item by its ID
func (r *actionRepository) FindByID(ctx context.Context, id string) (*entities.ActionItem, error) {
	value, err := r.store.Get(ctx, actionCollection, id)
	if err != nil {
		return nil, err
	}

	var item entities.ActionItem
	if err := json.Unmarshal(value, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListAll enumerates action items via the ID index, skipping stale index
// entries whose values are gone
func (r *actionRepository) ListAll(ctx context.Context) ([]*entities.ActionItem, error) {
	ids, err := r.store.Index(ctx, actionIndex)
	if err != nil {
		return nil, err
	}

	items := make([]*entities.ActionItem, 0, len(ids))
	for _, id := range ids {
		item, err := r.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrKeyNotFound) {
				continue
			}
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
