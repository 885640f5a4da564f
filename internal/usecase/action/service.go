package action

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/teamsync/errors"
	"github.com/johnquangdev/teamsync/internal/domain/entities"
	"github.com/johnquangdev/teamsync/internal/domain/repositories"
)

// Changes describes a partial edit to an action item. DueDate only applies
// when DueDateSet is true; a nil DueDate with DueDateSet clears the date.
type Changes struct {
	Status     *entities.ActionItemStatus
	Assignee   *string
	DueDate    *time.Time
	DueDateSet bool
}

// Service applies external edits to action items
type Service struct {
	actions repositories.ActionRepository
	logger  *zap.Logger
	now     func() time.Time
}

// NewService constructs the action update service
func NewService(actions repositories.ActionRepository, logger *zap.Logger) *Service {
	return &Service{actions: actions, logger: logger, now: time.Now}
}

// Update applies the changes with last-writer-wins semantics. Transitioning
// into done stamps completedAt; leaving done clears it.
func (s *Service) Update(ctx context.Context, actionID string, changes Changes) (*entities.ActionItem, error) {
	item, err := s.actions.FindByID(ctx, actionID)
	if err != nil {
		if errors.Is(err, repositories.ErrKeyNotFound) {
			return nil, apperrors.ErrActionNotFound(actionID)
		}
		return nil, err
	}

	if changes.Assignee != nil {
		item.Assignee = *changes.Assignee
	}
	if changes.DueDateSet {
		item.DueDate = changes.DueDate
	}
	if changes.Status != nil {
		wasDone := item.Status == entities.ActionItemStatusDone
		item.SetStatus(*changes.Status, s.now().UTC())
		if !wasDone && item.Status == entities.ActionItemStatusDone {
			s.logger.Info("action marked as completed", zap.String("action_id", actionID))
		}
		if wasDone && item.Status != entities.ActionItemStatusDone {
			s.logger.Info("action unmarked as completed", zap.String("action_id", actionID))
		}
	}

	if err := s.actions.Update(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("action updated",
		zap.String("action_id", actionID),
		zap.String("status", string(item.Status)),
	)
	return item, nil
}
