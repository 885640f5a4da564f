package reminder

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/teamsync/errors"
	"github.com/johnquangdev/teamsync/internal/domain/entities"
	"github.com/johnquangdev/teamsync/internal/domain/events"
	"github.com/johnquangdev/teamsync/internal/domain/repositories"
	"github.com/johnquangdev/teamsync/pkg/id"
	"github.com/johnquangdev/teamsync/pkg/mailer"
)

// UnassignedBucket groups action items without an assignee
const UnassignedBucket = "Unassigned"

// Service runs the due/overdue sweep and delivers the per-assignee reminder
// batches it emits. The sweep is idempotent and deliberately not transactional:
// a crash mid-run leaves some groups notified and others not, and the next run
// re-notifies, so notification is at-least-once.
type Service struct {
	actions   repositories.ActionRepository
	reminders repositories.ReminderRepository
	bus       repositories.EventPublisher
	sender    mailer.Sender
	ids       id.Generator
	logger    *zap.Logger

	// recipient receives all reminder mail until assignees map to accounts
	recipient    string
	sendInterval time.Duration
	now          func() time.Time
	sleep        func(time.Duration)

	// sendMu guards nextSend, the shared send-slot cursor that keeps
	// concurrent deliveries sendInterval apart
	sendMu   sync.Mutex
	nextSend time.Time
}

// NewService constructs the status scheduler
func NewService(
	actions repositories.ActionRepository,
	reminders repositories.ReminderRepository,
	bus repositories.EventPublisher,
	sender mailer.Sender,
	ids id.Generator,
	recipient string,
	sendInterval time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		actions:      actions,
		reminders:    reminders,
		bus:          bus,
		sender:       sender,
		ids:          ids,
		logger:       logger,
		recipient:    recipient,
		sendInterval: sendInterval,
		now:          time.Now,
		sleep:        time.Sleep,
	}
}

// Register wires the reminder delivery reaction onto the bus
func (s *Service) Register(bus repositories.EventBus) {
	bus.Subscribe(events.TopicReminderDue, s.HandleReminderDue)
}

// Summary reports what one sweep found
type Summary struct {
	TotalActions int `json:"total_actions"`
	DueToday     int `json:"due_today"`
	Overdue      int `json:"overdue"`
	Assignees    int `json:"assignees"`
}

// Sweep scans every action item, advances overdue status, and emits one
// reminder batch per assignee. Done items and items without a due date are
// never touched; overdue is a one-way transition the sweep never reverses.
func (s *Service) Sweep(ctx context.Context) (*Summary, error) {
	all, err := s.actions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	today := entities.DateOnly(s.now())

	var dueToday, overdue []*entities.ActionItem

	for _, action := range all {
		if action.Status == entities.ActionItemStatusDone {
			continue
		}
		if action.DueDate == nil {
			continue
		}

		if action.DueOn(today) {
			dueToday = append(dueToday, action)
			continue
		}

		if action.OverdueBy(today) {
			if action.Status != entities.ActionItemStatusOverdue {
				action.Status = entities.ActionItemStatusOverdue
				if err := s.actions.Update(ctx, action); err != nil {
					return nil, err
				}
				s.logger.Info("action marked as overdue",
					zap.String("action_id", action.ID),
					zap.String("assignee", action.Assignee),
				)
			}
			overdue = append(overdue, action)
		}
	}

	s.logger.Info("reminder sweep completed",
		zap.Int("total_actions", len(all)),
		zap.Int("due_today", len(dueToday)),
		zap.Int("overdue", len(overdue)),
	)

	groups := make(map[string][]*entities.ActionItem)
	for _, action := range append(append([]*entities.ActionItem{}, dueToday...), overdue...) {
		assignee := action.Assignee
		if assignee == "" {
			assignee = UnassignedBucket
		}
		groups[assignee] = append(groups[assignee], action)
	}

	assignees := make([]string, 0, len(groups))
	for assignee := range groups {
		assignees = append(assignees, assignee)
	}
	sort.Strings(assignees)

	for _, assignee := range assignees {
		actions := groups[assignee]

		// recompute per group so each batch's counts are self-consistent
		var dueCount, overdueCount int
		for _, action := range actions {
			if action.DueOn(today) {
				dueCount++
			}
			if action.OverdueBy(today) {
				overdueCount++
			}
		}

		if err := s.bus.Publish(ctx, events.TopicReminderDue, events.ReminderDue{
			Assignee:     assignee,
			Actions:      actions,
			DueCount:     dueCount,
			OverdueCount: overdueCount,
		}); err != nil {
			return nil, err
		}

		s.logger.Info("reminder batch emitted",
			zap.String("assignee", assignee),
			zap.Int("actions_count", len(actions)),
		)
	}

	return &Summary{
		TotalActions: len(all),
		DueToday:     len(dueToday),
		Overdue:      len(overdue),
		Assignees:    len(groups),
	}, nil
}

// HandleReminderDue delivers one assignee's reminder batch and records an
// audit entry per action. Delivery failures are absorbed: the next sweep
// re-notifies anyway.
func (s *Service) HandleReminderDue(ctx context.Context, payload interface{}) error {
	evt, ok := payload.(events.ReminderDue)
	if !ok {
		return fmt.Errorf("unexpected payload type %T for %s", payload, events.TopicReminderDue)
	}

	s.logger.Info("sending reminder email",
		zap.String("assignee", evt.Assignee),
		zap.Int("actions_count", len(evt.Actions)),
		zap.Int("due_count", evt.DueCount),
		zap.Int("overdue_count", evt.OverdueCount),
	)

	// TODO: look up the assignee's address once assignees map to user accounts
	recipient := s.recipient

	msg := mailer.Message{
		To:      recipient,
		Subject: reminderSubject(evt),
		HTML:    renderReminderEmail(evt, entities.DateOnly(s.now())),
	}

	// provider allows 2 emails/second; deliveries run concurrently, so each
	// send reserves the next slot instead of sleeping a flat interval
	s.pace()

	res := s.sender.Send(ctx, msg)

	status := entities.ReminderStatusSent
	errText := ""
	if res.Err != nil {
		status = entities.ReminderStatusFailed
		errText = res.Err.Error()
		s.logger.Error("failed to send reminder email",
			zap.String("assignee", evt.Assignee),
			zap.Error(apperrors.ErrDeliveryFailed(recipient, res.Err)),
		)
	} else {
		s.logger.Info("reminder email sent",
			zap.String("assignee", evt.Assignee),
			zap.String("recipient", recipient),
		)
	}

	for _, action := range evt.Actions {
		record := &entities.Reminder{
			ID:       s.ids.ReminderID(),
			ActionID: action.ID,
			SentAt:   s.now().UTC(),
			Status:   status,
			Error:    errText,
		}
		if err := s.reminders.Record(ctx, record); err != nil {
			s.logger.Warn("failed to record reminder audit entry",
				zap.String("action_id", action.ID),
				zap.Error(err),
			)
		}
	}

	return nil
}

// pace reserves the next send slot and blocks until it arrives. Slots sit
// sendInterval apart no matter how many deliveries run at once; the first
// send in an idle period goes out immediately.
func (s *Service) pace() {
	if s.sendInterval <= 0 {
		return
	}

	s.sendMu.Lock()
	now := s.now()
	slot := s.nextSend
	if slot.Before(now) {
		slot = now
	}
	s.nextSend = slot.Add(s.sendInterval)
	s.sendMu.Unlock()

	if wait := slot.Sub(now); wait > 0 {
		s.sleep(wait)
	}
}
