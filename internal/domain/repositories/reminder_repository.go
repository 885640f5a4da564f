package repositories

import (
	"context"

	"github.com/johnquangdev/teamsync/internal/domain/entities"
)

// ReminderRepository records reminder delivery attempts
type ReminderRepository interface {
	Record(ctx context.Context, reminder *entities.Reminder) error
}
