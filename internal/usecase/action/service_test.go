package action

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/teamsync/errors"
	"github.com/johnquangdev/teamsync/internal/adapter/repository"
	"github.com/johnquangdev/teamsync/internal/domain/entities"
	"github.com/johnquangdev/teamsync/internal/domain/repositories"
	"github.com/johnquangdev/teamsync/internal/infrastructure/cache"
)

var testNow = time.Date(2026, 6, 10, 15, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, repositories.ActionRepository) {
	t.Helper()
	actions := repository.NewActionRepository(cache.NewMemoryStore())
	svc := NewService(actions, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc, actions
}

func seedAction(t *testing.T, actions repositories.ActionRepository, id string, status entities.ActionItemStatus) *entities.ActionItem {
	t.Helper()
	item := &entities.ActionItem{
		ID:          id,
		MeetingID:   "meeting_1",
		Description: "Task " + id,
		Assignee:    "Alice",
		Priority:    entities.ActionItemPriorityMedium,
		Status:      status,
		CreatedAt:   testNow.AddDate(0, 0, -7),
	}
	if status == entities.ActionItemStatusDone {
		done := testNow.AddDate(0, 0, -1)
		item.CompletedAt = &done
	}
	require.NoError(t, actions.CreateBatch(context.Background(), []*entities.ActionItem{item}))
	return item
}

func TestUpdateMarkDoneStampsCompletedAt(t *testing.T) {
	svc, actions := newTestService(t)
	seedAction(t, actions, "a1", entities.ActionItemStatusPending)

	done := entities.ActionItemStatusDone
	updated, err := svc.Update(context.Background(), "a1", Changes{Status: &done})
	require.NoError(t, err)

	assert.Equal(t, entities.ActionItemStatusDone, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, testNow, *updated.CompletedAt)

	// Persisted, not just returned
	stored, err := actions.FindByID(context.Background(), "a1")
	require.NoError(t, err)
	require.NotNil(t, stored.CompletedAt)
}

func TestUpdateReopenClearsCompletedAt(t *testing.T) {
	svc, actions := newTestService(t)
	seedAction(t, actions, "a1", entities.ActionItemStatusDone)

	pending := entities.ActionItemStatusPending
	updated, err := svc.Update(context.Background(), "a1", Changes{Status: &pending})
	require.NoError(t, err)

	assert.Equal(t, entities.ActionItemStatusPending, updated.Status)
	assert.Nil(t, updated.CompletedAt)
}

func TestUpdateDoneToDoneKeepsOriginalTimestamp(t *testing.T) {
	svc, actions := newTestService(t)
	item := seedAction(t, actions, "a1", entities.ActionItemStatusDone)
	original := *item.CompletedAt

	done := entities.ActionItemStatusDone
	updated, err := svc.Update(context.Background(), "a1", Changes{Status: &done})
	require.NoError(t, err)

	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, original, *updated.CompletedAt)
}

func TestUpdatePartialFields(t *testing.T) {
	svc, actions := newTestService(t)
	seedAction(t, actions, "a1", entities.ActionItemStatusPending)

	bob := "Bob"
	updated, err := svc.Update(context.Background(), "a1", Changes{Assignee: &bob})
	require.NoError(t, err)

	assert.Equal(t, "Bob", updated.Assignee)
	assert.Equal(t, entities.ActionItemStatusPending, updated.Status)
	assert.Nil(t, updated.DueDate)
}

func TestUpdateSetAndClearDueDate(t *testing.T) {
	svc, actions := newTestService(t)
	seedAction(t, actions, "a1", entities.ActionItemStatusPending)
	ctx := context.Background()

	due := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, "a1", Changes{DueDate: &due, DueDateSet: true})
	require.NoError(t, err)
	require.NotNil(t, updated.DueDate)
	assert.Equal(t, due, *updated.DueDate)

	// Explicit clear
	updated, err = svc.Update(ctx, "a1", Changes{DueDate: nil, DueDateSet: true})
	require.NoError(t, err)
	assert.Nil(t, updated.DueDate)

	// Absent field leaves the value alone
	stored, err := actions.FindByID(ctx, "a1")
	require.NoError(t, err)
	assert.Nil(t, stored.DueDate)
}

func TestUpdateUnknownAction(t *testing.T) {
	svc, _ := newTestService(t)

	done := entities.ActionItemStatusDone
	_, err := svc.Update(context.Background(), "action_missing", Changes{Status: &done})
	require.Error(t, err)

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_ACTION_NOT_FOUND, appErr.Code)
}
