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
	meetingCollection = "meetings"
	meetingIndex      = "meeting_ids"
)

// meetingRepository implements the MeetingRepository interface over the
// key-value state store
type meetingRepository struct {
	store repositories.StateStore
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(store repositories.StateStore) repositories.MeetingRepository {
	return &meetingRepository{store: store}
}

// Create persists the meeting and appends its ID to the meeting index
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	value, err := json.Marshal(meeting)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, meetingCollection, meeting.ID, value); err != nil {
		return apperrors.ErrStoreFailed("create meeting", err)
	}
	if err := r.store.AppendIndex(ctx, meetingIndex, meeting.ID); err != nil {
		return apperrors.ErrStoreFailed("index meeting", err)
	}
	return nil
}

// Update overwrites an existing meeting
func (r *meetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	value, err := json.Marshal(meeting)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, meetingCollection, meeting.ID, value); err != nil {
		return apperrors.ErrStoreFailed("update meeting", err)
	}
	return nil
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id string) (*entities.Meeting, error) {
	value, err := r.store.Get(ctx, meetingCollection, id)
	if err != nil {
		return nil, err
	}

	var meeting entities.Meeting
	if err := json.Unmarshal(value, &meeting); err != nil {
		return nil, err
	}
	return &meeting, nil
}

// ListAll enumerates meetings via the ID index, skipping stale index entries
func (r *meetingRepository) ListAll(ctx context.Context) ([]*entities.Meeting, error) {
	ids, err := r.store.Index(ctx, meetingIndex)
	if err != nil {
		return nil, err
	}

	meetings := make([]*entities.Meeting, 0, len(ids))
	for _, id := range ids {
		meeting, err := r.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrKeyNotFound) {
				continue
			}
			return nil, err
		}
		meetings = append(meetings, meeting)
	}
	return meetings, nil
}
