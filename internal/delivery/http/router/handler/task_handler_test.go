package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskman/internal/delivery/http/middleware"
	"taskman/internal/delivery/http/validator"
	"taskman/internal/domain/constants"
	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	mockUC "taskman/internal/mocks/usecase"
	"taskman/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskHandlerFixtures struct {
	handler *TaskHandler
	taskUC  *mockUC.MockTaskUsecase
	echo    *echo.Echo
	errMW   *middleware.ErrorMiddleware
}

func createTestTaskHandler(t *testing.T) taskHandlerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	taskUC := mockUC.NewMockTaskUsecase(t)

	e := echo.New()
	e.Validator = validator.New()

	return taskHandlerFixtures{
		handler: NewTaskHandler(taskUC, logger),
		taskUC:  taskUC,
		echo:    e,
		errMW:   middleware.NewErrorMiddleware(logger),
	}
}

func (fx taskHandlerFixtures) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return fx.echo.NewContext(req, rec), rec
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	fx := createTestTaskHandler(t)
	c, rec := fx.newContext(http.MethodPost, "/tasks", `{"title":"Write report","duration":"2h"}`)

	created := &entity.Task{
		ID:     uuid.New(),
		Title:  "Write report",
		Status: constants.TaskStatusPending,
	}
	fx.taskUC.EXPECT().
		CreateTask(mock.Anything, &usecase.CreateTaskInput{Title: "Write report", Duration: "2h"}).
		Return(created, nil)

	require.NoError(t, fx.handler.CreateTask(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Task created successfully")
	assert.Contains(t, rec.Body.String(), created.ID.String())
}

func TestTaskHandler_CreateTask_MissingTitle(t *testing.T) {
	fx := createTestTaskHandler(t)
	c, rec := fx.newContext(http.MethodPost, "/tasks", `{"description":"no title"}`)

	err := fx.handler.CreateTask(c)
	require.Error(t, err)
	fx.errMW.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestTaskHandler_CreateTask_InvalidStatus(t *testing.T) {
	fx := createTestTaskHandler(t)
	c, rec := fx.newContext(http.MethodPost, "/tasks", `{"title":"x","status":"paused"}`)

	err := fx.handler.CreateTask(c)
	require.Error(t, err)
	fx.errMW.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskHandler_ListTasks(t *testing.T) {
	fx := createTestTaskHandler(t)
	c, rec := fx.newContext(http.MethodGet, "/tasks", "")

	stored := []*entity.Task{
		{ID: uuid.New(), Title: "First"},
		{ID: uuid.New(), Title: "Second"},
	}
	fx.taskUC.EXPECT().ListTasks(mock.Anything).Return(stored, nil)

	require.NoError(t, fx.handler.ListTasks(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "First")
	assert.Contains(t, rec.Body.String(), "Second")
}

func TestTaskHandler_GetTask_Success(t *testing.T) {
	fx := createTestTaskHandler(t)
	stored := &entity.Task{ID: uuid.New(), Title: "Existing"}

	c, rec := fx.newContext(http.MethodGet, "/tasks/"+stored.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(stored.ID.String())

	fx.taskUC.EXPECT().GetTask(mock.Anything, stored.ID).Return(stored, nil)

	require.NoError(t, fx.handler.GetTask(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Existing")
}

func TestTaskHandler_GetTask_InvalidID(t *testing.T) {
	fx := createTestTaskHandler(t)
	c, rec := fx.newContext(http.MethodGet, "/tasks/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := fx.handler.GetTask(c)
	require.Error(t, err)
	fx.errMW.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestTaskHandler_GetTask_NotFound(t *testing.T) {
	fx := createTestTaskHandler(t)
	taskID := uuid.New()

	c, rec := fx.newContext(http.MethodGet, "/tasks/"+taskID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	fx.taskUC.EXPECT().GetTask(mock.Anything, taskID).Return(nil, domainerrors.ErrTaskNotFound)

	err := fx.handler.GetTask(c)
	require.Error(t, err)
	fx.errMW.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "TASK_NOT_FOUND")
}

func TestTaskHandler_UpdateTask_PartialBody(t *testing.T) {
	fx := createTestTaskHandler(t)
	taskID := uuid.New()
	updated := &entity.Task{ID: taskID, Title: "Kept", Status: constants.TaskStatusCompleted}

	c, rec := fx.newContext(http.MethodPut, "/tasks/"+taskID.String(), `{"status":"completed"}`)
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	fx.taskUC.EXPECT().
		UpdateTask(mock.Anything, taskID, mock.AnythingOfType("*usecase.UpdateTaskInput")).
		Run(func(ctx context.Context, id uuid.UUID, input *usecase.UpdateTaskInput) {
			// Omitted fields must stay nil so stored values survive.
			require.NotNil(t, input.Status)
			assert.Equal(t, constants.TaskStatusCompleted, *input.Status)
			assert.Nil(t, input.Title)
			assert.Nil(t, input.Date)
		}).
		Return(updated, nil)

	require.NoError(t, fx.handler.UpdateTask(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Task updated successfully")
}

func TestTaskHandler_UpdateTask_NotFound(t *testing.T) {
	fx := createTestTaskHandler(t)
	taskID := uuid.New()

	c, rec := fx.newContext(http.MethodPut, "/tasks/"+taskID.String(), `{"title":"New"}`)
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	fx.taskUC.EXPECT().
		UpdateTask(mock.Anything, taskID, mock.AnythingOfType("*usecase.UpdateTaskInput")).
		Return(nil, domainerrors.ErrTaskNotFound)

	err := fx.handler.UpdateTask(c)
	require.Error(t, err)
	fx.errMW.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	fx := createTestTaskHandler(t)
	stored := &entity.Task{ID: uuid.New(), Title: "Condemned"}

	c, rec := fx.newContext(http.MethodDelete, "/tasks/"+stored.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(stored.ID.String())

	fx.taskUC.EXPECT().DeleteTask(mock.Anything, stored.ID).Return(stored, nil)

	require.NoError(t, fx.handler.DeleteTask(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Task deleted successfully")
	assert.Contains(t, rec.Body.String(), "Condemned")
}

func TestTaskHandler_DeleteTask_NotFound(t *testing.T) {
	fx := createTestTaskHandler(t)
	taskID := uuid.New()

	c, rec := fx.newContext(http.MethodDelete, "/tasks/"+taskID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	fx.taskUC.EXPECT().DeleteTask(mock.Anything, taskID).Return(nil, domainerrors.ErrTaskNotFound)

	err := fx.handler.DeleteTask(c)
	require.Error(t, err)
	fx.errMW.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
