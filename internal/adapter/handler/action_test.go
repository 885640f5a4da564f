package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/teamsync/internal/adapter/repository"
	"github.com/johnquangdev/teamsync/internal/domain/entities"
	"github.com/johnquangdev/teamsync/internal/infrastructure/cache"
	actionUsecase "github.com/johnquangdev/teamsync/internal/usecase/action"
	"github.com/johnquangdev/teamsync/internal/usecase/query"
	pkgvalidator "github.com/johnquangdev/teamsync/pkg/validator"
)

func newTestEcho(t *testing.T) (*echo.Echo, *Action) {
	t.Helper()

	store := cache.NewMemoryStore()
	actions := repository.NewActionRepository(store)
	meetings := repository.NewMeetingRepository(store)

	due := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	seeded := &entities.ActionItem{
		ID:          "action_1",
		MeetingID:   "meeting_1",
		Description: "Prepare report",
		Assignee:    "Alice",
		DueDate:     &due,
		Priority:    entities.ActionItemPriorityHigh,
		Status:      entities.ActionItemStatusPending,
		CreatedAt:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, actions.CreateBatch(context.Background(), []*entities.ActionItem{seeded}))

	logger := zap.NewNop()
	h := NewActionHandler(
		actionUsecase.NewService(actions, logger),
		query.NewService(meetings, actions, logger),
		logger,
	)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e, h
}

func TestListActions(t *testing.T) {
	e, h := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/actions?status=pending", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Actions []json.RawMessage `json:"actions"`
			Total   int               `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.Total)
}

func TestListActionsRejectsUnknownStatus(t *testing.T) {
	e, h := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/actions?status=finished", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateActionStatus(t *testing.T) {
	e, h := newTestEcho(t)

	body := `{"status": "done"}`
	req := httptest.NewRequest(http.MethodPut, "/v1/actions/action_1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("action_1")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data entities.ActionItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, entities.ActionItemStatusDone, resp.Data.Status)
	assert.NotNil(t, resp.Data.CompletedAt)
}

func TestUpdateActionClearsDueDate(t *testing.T) {
	e, h := newTestEcho(t)

	body := `{"due_date": null}`
	req := httptest.NewRequest(http.MethodPut, "/v1/actions/action_1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("action_1")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data entities.ActionItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Data.DueDate)
}

func TestUpdateActionBadDateFormat(t *testing.T) {
	e, h := newTestEcho(t)

	body := `{"due_date": "next tuesday"}`
	req := httptest.NewRequest(http.MethodPut, "/v1/actions/action_1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("action_1")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateActionNotFound(t *testing.T) {
	e, h := newTestEcho(t)

	body := `{"status": "done"}`
	req := httptest.NewRequest(http.MethodPut, "/v1/actions/action_missing", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("action_missing")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
