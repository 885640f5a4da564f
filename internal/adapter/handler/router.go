package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/teamsync/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	meetingHandler   *Meeting
	actionHandler    *Action
	dashboardHandler *Dashboard
	reminderHandler  *Reminder
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	meetingHandler *Meeting,
	actionHandler *Action,
	dashboardHandler *Dashboard,
	reminderHandler *Reminder,
) *Router {
	return &Router{
		cfg:              cfg,
		meetingHandler:   meetingHandler,
		actionHandler:    actionHandler,
		dashboardHandler: dashboardHandler,
		reminderHandler:  reminderHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupActionRoutes(v1)
	rt.setupDashboardRoutes(v1)
	rt.setupReminderRoutes(v1)
}

// setupMeetingRoutes configures meeting routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")
	meetings.POST("/upload", rt.meetingHandler.Upload)
}

// setupActionRoutes configures action item routes
func (rt *Router) setupActionRoutes(g *echo.Group) {
	actions := g.Group("/actions")
	actions.GET("", rt.actionHandler.List)
	actions.PUT("/:id", rt.actionHandler.Update)
}

// setupDashboardRoutes configures dashboard routes
func (rt *Router) setupDashboardRoutes(g *echo.Group) {
	g.GET("/dashboard", rt.dashboardHandler.Metrics)
}

// setupReminderRoutes configures reminder routes
func (rt *Router) setupReminderRoutes(g *echo.Group) {
	reminders := g.Group("/reminders")
	reminders.POST("/trigger", rt.reminderHandler.Trigger)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
