package entities

import "time"

type ReminderStatus string

const (
	ReminderStatusSent   ReminderStatus = "sent"
	ReminderStatusFailed ReminderStatus = "failed"
)

// Reminder is a delivery audit record, one per action item per reminder
// email attempt
type Reminder struct {
	ID       string         `json:"id"`
	ActionID string         `json:"action_id"`
	SentAt   time.Time      `json:"sent_at"`
	Status   ReminderStatus `json:"status"`
	Error    string         `json:"error,omitempty"`
}
