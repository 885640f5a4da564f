package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/teamsync/errors"
	"github.com/johnquangdev/teamsync/internal/domain/entities"
	"github.com/johnquangdev/teamsync/internal/domain/events"
	"github.com/johnquangdev/teamsync/internal/domain/repositories"
	"github.com/johnquangdev/teamsync/pkg/id"
	"github.com/johnquangdev/teamsync/pkg/mailer"
)

// Extractor is the extraction adapter boundary
type Extractor interface {
	Extract(ctx context.Context, transcript string) ([]entities.ExtractedAction, error)
}

// Service drives the upload -> extract -> save -> notify event chain.
// Pipeline success is defined by persistence; notification delivery failures
// are absorbed and logged, never propagated.
type Service struct {
	meetings repositories.MeetingRepository
	actions  repositories.ActionRepository
	extract  Extractor
	bus      repositories.EventPublisher
	sender   mailer.Sender
	ids      id.Generator
	logger   *zap.Logger
}

// NewService constructs the pipeline orchestrator
func NewService(
	meetings repositories.MeetingRepository,
	actions repositories.ActionRepository,
	extract Extractor,
	bus repositories.EventPublisher,
	sender mailer.Sender,
	ids id.Generator,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetings: meetings,
		actions:  actions,
		extract:  extract,
		bus:      bus,
		sender:   sender,
		ids:      ids,
		logger:   logger,
	}
}

// Register wires the pipeline's reactions onto the bus
func (s *Service) Register(bus repositories.EventBus) {
	bus.Subscribe(events.TopicMeetingUploaded, s.HandleMeetingUploaded)
	bus.Subscribe(events.TopicActionsExtracted, s.HandleActionsExtracted)
	bus.Subscribe(events.TopicActionsSaved, s.HandleActionsSaved)
}

// UploadMeeting creates the meeting record and seeds the extraction chain
func (s *Service) UploadMeeting(ctx context.Context, title, transcript, uploadedBy string) (*entities.Meeting, error) {
	meeting := entities.NewMeeting(s.ids.MeetingID(), title, transcript, uploadedBy)

	if err := s.meetings.Create(ctx, meeting); err != nil {
		return nil, err
	}

	s.logger.Info("meeting stored",
		zap.String("meeting_id", meeting.ID),
		zap.String("title", meeting.Title),
	)

	if err := s.bus.Publish(ctx, events.TopicMeetingUploaded, events.MeetingUploaded{
		MeetingID:  meeting.ID,
		Title:      meeting.Title,
		Transcript: meeting.Transcript,
	}); err != nil {
		return nil, err
	}

	return meeting, nil
}

// HandleMeetingUploaded runs AI extraction for an uploaded meeting.
// Zero candidates terminates the chain with the meeting marked processed.
// Extraction failure also marks the meeting processed, so a broken transcript
// is never re-queued forever, then propagates the error for the host's retry
// policy.
func (s *Service) HandleMeetingUploaded(ctx context.Context, payload interface{}) error {
	evt, ok := payload.(events.MeetingUploaded)
	if !ok {
		return fmt.Errorf("unexpected payload type %T for %s", payload, events.TopicMeetingUploaded)
	}

	s.logger.Info("starting AI extraction",
		zap.String("meeting_id", evt.MeetingID),
		zap.String("title", evt.Title),
	)

	extracted, err := s.extract.Extract(ctx, evt.Transcript)
	if err != nil {
		s.logger.Error("AI extraction failed",
			zap.String("meeting_id", evt.MeetingID),
			zap.Error(err),
		)
		s.markProcessed(ctx, evt.MeetingID)
		return err
	}

	if len(extracted) == 0 {
		s.logger.Warn("no action items found in transcript",
			zap.String("meeting_id", evt.MeetingID),
			zap.String("title", evt.Title),
		)
		s.markProcessed(ctx, evt.MeetingID)
		return nil
	}

	return s.bus.Publish(ctx, events.TopicActionsExtracted, events.ActionsExtracted{
		MeetingID:        evt.MeetingID,
		Title:            evt.Title,
		ExtractedActions: extracted,
	})
}

// HandleActionsExtracted materializes and persists the extracted candidates,
// marks the meeting processed, and announces the saved batch
func (s *Service) HandleActionsExtracted(ctx context.Context, payload interface{}) error {
	evt, ok := payload.(events.ActionsExtracted)
	if !ok {
		return fmt.Errorf("unexpected payload type %T for %s", payload, events.TopicActionsExtracted)
	}

	items := make([]*entities.ActionItem, 0, len(evt.ExtractedActions))
	ids := make([]string, 0, len(evt.ExtractedActions))
	for _, extracted := range evt.ExtractedActions {
		item := entities.NewActionItem(s.ids.ActionID(), evt.MeetingID, extracted)
		items = append(items, item)
		ids = append(ids, item.ID)
	}

	if err := s.actions.CreateBatch(ctx, items); err != nil {
		return err
	}

	s.logger.Info("action items saved",
		zap.String("meeting_id", evt.MeetingID),
		zap.Int("saved_count", len(items)),
	)

	s.markProcessed(ctx, evt.MeetingID)

	return s.bus.Publish(ctx, events.TopicActionsSaved, events.ActionsSaved{
		MeetingID:    evt.MeetingID,
		Title:        evt.Title,
		ActionIDs:    ids,
		ActionItems:  items,
		ActionsCount: len(items),
	})
}

// HandleActionsSaved sends the confirmation email to the uploader. Delivery is
// best-effort: any failure is logged and absorbed.
func (s *Service) HandleActionsSaved(ctx context.Context, payload interface{}) error {
	evt, ok := payload.(events.ActionsSaved)
	if !ok {
		return fmt.Errorf("unexpected payload type %T for %s", payload, events.TopicActionsSaved)
	}

	meeting, err := s.meetings.FindByID(ctx, evt.MeetingID)
	if err != nil {
		if errors.Is(err, repositories.ErrKeyNotFound) {
			s.logger.Warn("meeting not found for confirmation email",
				zap.String("meeting_id", evt.MeetingID),
			)
			return nil
		}
		return err
	}

	msg := mailer.Message{
		To:      meeting.UploadedBy,
		Subject: confirmationSubject(evt.Title, evt.ActionsCount),
		HTML:    renderConfirmationEmail(evt.Title, evt.ActionItems),
	}

	if res := s.sender.Send(ctx, msg); res.Err != nil {
		s.logger.Error("failed to send confirmation email",
			zap.String("meeting_id", evt.MeetingID),
			zap.Error(apperrors.ErrDeliveryFailed(meeting.UploadedBy, res.Err)),
		)
		return nil
	}

	s.logger.Info("confirmation email sent",
		zap.String("meeting_id", evt.MeetingID),
		zap.String("recipient", meeting.UploadedBy),
		zap.Int("actions_count", evt.ActionsCount),
	)
	return nil
}

// markProcessed flips the meeting's processed flag; best-effort, a missing
// meeting only logs
func (s *Service) markProcessed(ctx context.Context, meetingID string) {
	meeting, err := s.meetings.FindByID(ctx, meetingID)
	if err != nil {
		s.logger.Warn("could not load meeting to mark processed",
			zap.String("meeting_id", meetingID),
			zap.Error(err),
		)
		return
	}

	meeting.Processed = true
	if err := s.meetings.Update(ctx, meeting); err != nil {
		s.logger.Error("failed to mark meeting processed",
			zap.String("meeting_id", meetingID),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("meeting marked as processed", zap.String("meeting_id", meetingID))
}
