package action

import "github.com/johnquangdev/teamsync/internal/domain/entities"

// ListActionsResponse is the body for GET /v1/actions
type ListActionsResponse struct {
	Actions []*entities.ActionItem `json:"actions"`
	Total   int                    `json:"total"`
}
