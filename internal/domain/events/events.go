package events

import "github.com/johnquangdev/teamsync/internal/domain/entities"

// Topics published by the pipeline and the reminder sweep. Delivery is
// at-least-once with unspecified ordering.
const (
	TopicMeetingUploaded  = "meeting.uploaded"
	TopicActionsExtracted = "actions.extracted"
	TopicActionsSaved     = "actions.saved"
	TopicReminderDue      = "reminder.due"
)

// MeetingUploaded seeds the extraction chain
type MeetingUploaded struct {
	MeetingID  string `json:"meeting_id"`
	Title      string `json:"title"`
	Transcript string `json:"transcript"`
}

// ActionsExtracted carries extraction candidates to the save step
type ActionsExtracted struct {
	MeetingID        string                     `json:"meeting_id"`
	Title            string                     `json:"title"`
	ExtractedActions []entities.ExtractedAction `json:"extracted_actions"`
}

// ActionsSaved announces persisted action items for confirmation delivery
type ActionsSaved struct {
	MeetingID    string                 `json:"meeting_id"`
	Title        string                 `json:"title"`
	ActionIDs    []string               `json:"action_ids"`
	ActionItems  []*entities.ActionItem `json:"action_items"`
	ActionsCount int                    `json:"actions_count"`
}

// ReminderDue is one per-assignee reminder batch from a sweep
type ReminderDue struct {
	Assignee     string                 `json:"assignee"`
	Actions      []*entities.ActionItem `json:"actions"`
	DueCount     int                    `json:"due_count"`
	OverdueCount int                    `json:"overdue_count"`
}
