package action

import "encoding/json"

// NullableDate distinguishes an absent due_date field (keep the current
// value) from an explicit null (clear it)
type NullableDate struct {
	Set   bool
	Value *string
}

// UnmarshalJSON marks the field present and captures the value or null
func (n *NullableDate) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// UpdateActionRequest is the body for PUT /v1/actions/:id
type UpdateActionRequest struct {
	Status   *string      `json:"status" validate:"omitempty,oneof=pending in_progress done overdue"`
	Assignee *string      `json:"assignee"`
	DueDate  NullableDate `json:"due_date"`
}

// ListActionsQuery holds the filter query parameters for GET /v1/actions
type ListActionsQuery struct {
	Status   string `query:"status" validate:"omitempty,oneof=pending in_progress done overdue"`
	Priority string `query:"priority" validate:"omitempty,oneof=low medium high"`
	Assignee string `query:"assignee"`
}
