package repository

import (
	"context"
	"encoding/json"

	apperrors "github.com/johnquangdev/teamsync/errors"
	"github.com/johnquangdev/teamsync/internal/domain/entities"
	"github.com/johnquangdev/teamsync/internal/domain/repositories"
)

const reminderCollection = "reminders"

// reminderRepository implements the ReminderRepository interface over the
// key-value state store
type reminderRepository struct {
	store repositories.StateStore
}

// NewReminderRepository creates a new reminder audit repository
func NewReminderRepository(store repositories.StateStore) repositories.ReminderRepository {
	return &reminderRepository{store: store}
}

// Record persists one delivery audit entry
func (r *reminderRepository) Record(ctx context.Context, reminder *entities.Reminder) error {
	value, err := json.Marshal(reminder)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, reminderCollection, reminder.ID, value); err != nil {
		return apperrors.ErrStoreFailed("record reminder", err)
	}
	return nil
}
