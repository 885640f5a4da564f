package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/teamsync/errors"
	actiondto "github.com/johnquangdev/teamsync/internal/adapter/dto/action"
	"github.com/johnquangdev/teamsync/internal/domain/entities"
	actionUsecase "github.com/johnquangdev/teamsync/internal/usecase/action"
	"github.com/johnquangdev/teamsync/internal/usecase/query"
)

const dueDateLayout = "2006-01-02"

// Action handles action item HTTP requests
type Action struct {
	updates *actionUsecase.Service
	queries *query.Service
	logger  *zap.Logger
}

// NewActionHandler creates a new action handler
func NewActionHandler(updates *actionUsecase.Service, queries *query.Service, logger *zap.Logger) *Action {
	return &Action{
		updates: updates,
		queries: queries,
		logger:  logger,
	}
}

// List handles GET /actions with optional status, priority, and assignee filters
func (h *Action) List(c echo.Context) error {
	var q actiondto.ListActionsQuery
	if err := c.Bind(&q); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload().WithDetail("bind", err.Error()))
	}

	if err := c.Validate(&q); err != nil {
		return HandleError(h.logger, c, err)
	}

	items, err := h.queries.ListActions(c.Request().Context(), query.Filters{
		Status:   q.Status,
		Priority: q.Priority,
		Assignee: q.Assignee,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, actiondto.ListActionsResponse{
		Actions: items,
		Total:   len(items),
	})
}

// Update handles PUT /actions/:id. All fields are optional; due_date accepts
// a YYYY-MM-DD string or an explicit null to clear the date.
func (h *Action) Update(c echo.Context) error {
	actionID := c.Param("id")
	if actionID == "" {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("action id is required"))
	}

	var req actiondto.UpdateActionRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload().WithDetail("bind", err.Error()))
	}

	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, err)
	}

	changes := actionUsecase.Changes{}

	if req.Status != nil {
		status := entities.ActionItemStatus(*req.Status)
		changes.Status = &status
	}
	if req.Assignee != nil {
		changes.Assignee = req.Assignee
	}
	if req.DueDate.Set {
		changes.DueDateSet = true
		if req.DueDate.Value != nil {
			parsed, err := time.ParseInLocation(dueDateLayout, *req.DueDate.Value, time.UTC)
			if err != nil {
				return HandleError(h.logger, c,
					apperrors.ErrInvalidPayload().WithDetail("due_date", "must be YYYY-MM-DD or null"))
			}
			changes.DueDate = &parsed
		}
	}

	item, err := h.updates.Update(c.Request().Context(), actionID, changes)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, item)
}
