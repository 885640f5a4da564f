package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/teamsync/errors"
	meetingdto "github.com/johnquangdev/teamsync/internal/adapter/dto/meeting"
	"github.com/johnquangdev/teamsync/internal/usecase/pipeline"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	pipeline *pipeline.Service
	logger   *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(pipeline *pipeline.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		pipeline: pipeline,
		logger:   logger,
	}
}

// Upload handles POST /meetings/upload. It stores the transcript and returns
// 201 immediately; extraction continues asynchronously on the event bus.
func (h *Meeting) Upload(c echo.Context) error {
	var req meetingdto.UploadMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload().WithDetail("bind", err.Error()))
	}

	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, err)
	}

	meeting, err := h.pipeline.UploadMeeting(c.Request().Context(), req.Title, req.Transcript, req.UploadedBy)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, meeting)
}
