package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/teamsync/internal/usecase/reminder"
)

// Reminder handles manual reminder sweep requests
type Reminder struct {
	reminders *reminder.Service
	logger    *zap.Logger
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminders *reminder.Service, logger *zap.Logger) *Reminder {
	return &Reminder{
		reminders: reminders,
		logger:    logger,
	}
}

// Trigger handles POST /reminders/trigger. It runs the same sweep the cron
// schedule runs and returns its summary.
func (h *Reminder) Trigger(c echo.Context) error {
	summary, err := h.reminders.Sweep(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, summary)
}
