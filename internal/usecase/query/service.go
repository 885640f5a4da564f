package query

import (
	"context"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/teamsync/internal/domain/entities"
	"github.com/johnquangdev/teamsync/internal/domain/repositories"
)

// Filters narrow the action list; empty fields match everything. Assignee is
// a case-insensitive substring match.
type Filters struct {
	Status   string
	Priority string
	Assignee string
}

// PriorityBreakdown counts open items per priority
type PriorityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Metrics is the dashboard aggregate
type Metrics struct {
	TotalMeetings     int               `json:"total_meetings"`
	ActiveActions     int               `json:"active_actions"`
	CompletedActions  int               `json:"completed_actions"`
	OverdueActions    int               `json:"overdue_actions"`
	CompletionRate    int               `json:"completion_rate"`
	PriorityBreakdown PriorityBreakdown `json:"priority_breakdown"`
}

// Service is the read side: filtering, sorting, and dashboard aggregation.
// It never mutates state.
type Service struct {
	meetings repositories.MeetingRepository
	actions  repositories.ActionRepository
	logger   *zap.Logger
}

// NewService constructs the query service
func NewService(meetings repositories.MeetingRepository, actions repositories.ActionRepository, logger *zap.Logger) *Service {
	return &Service{meetings: meetings, actions: actions, logger: logger}
}

var statusRank = map[entities.ActionItemStatus]int{
	entities.ActionItemStatusOverdue:    0,
	entities.ActionItemStatusPending:    1,
	entities.ActionItemStatusInProgress: 2,
	entities.ActionItemStatusDone:       3,
}

var priorityRank = map[entities.ActionItemPriority]int{
	entities.ActionItemPriorityHigh:   0,
	entities.ActionItemPriorityMedium: 1,
	entities.ActionItemPriorityLow:    2,
}

func rankStatus(s entities.ActionItemStatus) int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return 99
}

func rankPriority(p entities.ActionItemPriority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return 99
}

// ListActions applies the filters conjunctively and sorts by status rank,
// then ascending due date (no due date last), then priority rank. The sort
// is stable, so equal keys keep their enumeration order.
func (s *Service) ListActions(ctx context.Context, filters Filters) ([]*entities.ActionItem, error) {
	all, err := s.actions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entities.ActionItem, 0, len(all))
	for _, item := range all {
		if filters.Status != "" && string(item.Status) != filters.Status {
			continue
		}
		if filters.Priority != "" && string(item.Priority) != filters.Priority {
			continue
		}
		if filters.Assignee != "" &&
			!strings.Contains(strings.ToLower(item.Assignee), strings.ToLower(filters.Assignee)) {
			continue
		}
		filtered = append(filtered, item)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]

		if ra, rb := rankStatus(a.Status), rankStatus(b.Status); ra != rb {
			return ra < rb
		}

		switch {
		case a.DueDate != nil && b.DueDate != nil:
			if !a.DueDate.Equal(*b.DueDate) {
				return a.DueDate.Before(*b.DueDate)
			}
		case a.DueDate != nil:
			return true
		case b.DueDate != nil:
			return false
		}

		return rankPriority(a.Priority) < rankPriority(b.Priority)
	})

	s.logger.Info("actions listed",
		zap.Int("total", len(filtered)),
		zap.Bool("filtered", filters != Filters{}),
	)
	return filtered, nil
}

// Dashboard computes the aggregate metrics. An empty store yields a zero
// completion rate, not a division error.
func (s *Service) Dashboard(ctx context.Context) (*Metrics, error) {
	meetings, err := s.meetings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	actions, err := s.actions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	metrics := &Metrics{TotalMeetings: len(meetings)}

	for _, item := range actions {
		switch item.Status {
		case entities.ActionItemStatusPending, entities.ActionItemStatusInProgress:
			metrics.ActiveActions++
		case entities.ActionItemStatusDone:
			metrics.CompletedActions++
		case entities.ActionItemStatusOverdue:
			metrics.OverdueActions++
		}

		if item.Status != entities.ActionItemStatusDone {
			switch item.Priority {
			case entities.ActionItemPriorityHigh:
				metrics.PriorityBreakdown.High++
			case entities.ActionItemPriorityMedium:
				metrics.PriorityBreakdown.Medium++
			case entities.ActionItemPriorityLow:
				metrics.PriorityBreakdown.Low++
			}
		}
	}

	if total := len(actions); total > 0 {
		metrics.CompletionRate = int(math.Round(float64(metrics.CompletedActions) / float64(total) * 100))
	}

	return metrics, nil
}
