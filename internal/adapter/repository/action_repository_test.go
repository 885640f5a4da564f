package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/johnquangdev/teamsync/errors"
	"github.com/johnquangdev/teamsync/internal/domain/entities"
	"github.com/johnquangdev/teamsync/internal/infrastructure/cache"
)

// brokenStore fails every write so repositories can be tested against a
// store outage
type brokenStore struct {
	cause error
}

func (b *brokenStore) Get(context.Context, string, string) ([]byte, error) {
	return nil, b.cause
}

func (b *brokenStore) Set(context.Context, string, string, []byte) error {
	return b.cause
}

func (b *brokenStore) AppendIndex(context.Context, string, ...string) error {
	return b.cause
}

func (b *brokenStore) Index(context.Context, string) ([]string, error) {
	return nil, b.cause
}

func pendingItem(id string) *entities.ActionItem {
	return &entities.ActionItem{
		ID:          id,
		MeetingID:   "meeting_1",
		Description: "Task " + id,
		Priority:    entities.ActionItemPriorityMedium,
		Status:      entities.ActionItemStatusPending,
	}
}

func TestCreateBatchWrapsStoreFailure(t *testing.T) {
	cause := errors.New("connection refused")
	repo := NewActionRepository(&brokenStore{cause: cause})

	err := repo.CreateBatch(context.Background(), []*entities.ActionItem{pendingItem("a1")})
	require.Error(t, err)

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_STORE_FAILED, appErr.Code)
	assert.ErrorIs(t, err, cause)
}

func TestMeetingCreateWrapsStoreFailure(t *testing.T) {
	cause := errors.New("connection refused")
	repo := NewMeetingRepository(&brokenStore{cause: cause})

	err := repo.Create(context.Background(), entities.NewMeeting("meeting_1", "Standup", "transcript", "a@example.com"))
	require.Error(t, err)

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_STORE_FAILED, appErr.Code)
}

func TestReminderRecordWrapsStoreFailure(t *testing.T) {
	repo := NewReminderRepository(&brokenStore{cause: errors.New("connection refused")})

	err := repo.Record(context.Background(), &entities.Reminder{ID: "reminder_1", ActionID: "a1"})
	require.Error(t, err)

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_STORE_FAILED, appErr.Code)
}

func TestListAllSkipsDanglingIndexEntries(t *testing.T) {
	store := cache.NewMemoryStore()
	repo := NewActionRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.CreateBatch(ctx, []*entities.ActionItem{pendingItem("a1")}))
	// Index entry with no stored value
	require.NoError(t, store.AppendIndex(ctx, "action_ids", "a_gone"))

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a1", items[0].ID)
}
