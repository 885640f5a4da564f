package entities

import "time"

type ActionItemStatus string

const (
	ActionItemStatusPending    ActionItemStatus = "pending"
	ActionItemStatusInProgress ActionItemStatus = "in_progress"
	ActionItemStatusDone       ActionItemStatus = "done"
	ActionItemStatusOverdue    ActionItemStatus = "overdue"
)

type ActionItemPriority string

const (
	ActionItemPriorityLow    ActionItemPriority = "low"
	ActionItemPriorityMedium ActionItemPriority = "medium"
	ActionItemPriorityHigh   ActionItemPriority = "high"
)

// ActionItem is a tracked task extracted from a meeting. MeetingID is a
// back-reference only; enumeration goes through the store's ID index.
type ActionItem struct {
	ID          string             `json:"id"`
	MeetingID   string             `json:"meeting_id"`
	Description string             `json:"description"`
	Assignee    string             `json:"assignee"`
	DueDate     *time.Time         `json:"due_date"`
	Priority    ActionItemPriority `json:"priority"`
	Status      ActionItemStatus   `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	CompletedAt *time.Time         `json:"completed_at"`
}

// NewActionItem materializes an extracted candidate as a pending action item
func NewActionItem(id, meetingID string, extracted ExtractedAction) *ActionItem {
	return &ActionItem{
		ID:          id,
		MeetingID:   meetingID,
		Description: extracted.Description,
		Assignee:    extracted.Assignee,
		DueDate:     extracted.DueDate,
		Priority:    extracted.Priority,
		Status:      ActionItemStatusPending,
		CreatedAt:   time.Now().UTC(),
		CompletedAt: nil,
	}
}

// SetStatus transitions the item's status, maintaining the invariant
// status == done <=> completedAt != nil.
func (a *ActionItem) SetStatus(next ActionItemStatus, now time.Time) {
	if next == ActionItemStatusDone && a.Status != ActionItemStatusDone {
		t := now
		a.CompletedAt = &t
	}
	if next != ActionItemStatusDone && a.Status == ActionItemStatusDone {
		a.CompletedAt = nil
	}
	a.Status = next
}

// DueOn reports whether the item is due exactly on the given day
// (date-only comparison, time of day ignored)
func (a *ActionItem) DueOn(day time.Time) bool {
	if a.DueDate == nil {
		return false
	}
	return DateOnly(*a.DueDate).Equal(DateOnly(day))
}

// OverdueBy reports whether the item's due date is strictly before the given day
func (a *ActionItem) OverdueBy(day time.Time) bool {
	if a.DueDate == nil {
		return false
	}
	return DateOnly(*a.DueDate).Before(DateOnly(day))
}

// DateOnly truncates a timestamp to midnight UTC of its calendar day
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidActionItemStatus reports whether s names a known status
func ValidActionItemStatus(s string) bool {
	switch ActionItemStatus(s) {
	case ActionItemStatusPending, ActionItemStatusInProgress, ActionItemStatusDone, ActionItemStatusOverdue:
		return true
	}
	return false
}

// ValidActionItemPriority reports whether p names a known priority
func ValidActionItemPriority(p string) bool {
	switch ActionItemPriority(p) {
	case ActionItemPriorityLow, ActionItemPriorityMedium, ActionItemPriorityHigh:
		return true
	}
	return false
}
