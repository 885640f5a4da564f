package entities

import "time"

// ExtractedAction is the transient output shape of AI extraction. It is never
// persisted; the pipeline consumes it immediately to materialize ActionItems.
type ExtractedAction struct {
	Description string             `json:"description"`
	Assignee    string             `json:"assignee"`
	DueDate     *time.Time         `json:"due_date"`
	Priority    ActionItemPriority `json:"priority"`
}
