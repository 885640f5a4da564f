package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/teamsync/internal/usecase/query"
)

// Dashboard handles dashboard HTTP requests
type Dashboard struct {
	queries *query.Service
	logger  *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(queries *query.Service, logger *zap.Logger) *Dashboard {
	return &Dashboard{
		queries: queries,
		logger:  logger,
	}
}

// Metrics handles GET /dashboard
func (h *Dashboard) Metrics(c echo.Context) error {
	metrics, err := h.queries.Dashboard(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, metrics)
}
