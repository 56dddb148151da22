package handler

import (
	"log/slog"
	"net/http"
	"time"

	"taskman/internal/delivery/http/response"
	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task CRUD handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

type createTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Status      string `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Duration    *string `json:"duration"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Date        *string `json:"date"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
}

// taskResponse is the public shape of a task. The date renders as a bare
// calendar day, not a full timestamp.
type taskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Status      string    `json:"status"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTaskResponse(task *entity.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Duration:    task.Duration,
		Status:      task.Status,
		Date:        task.Date.Format("2006-01-02"),
		StartTime:   task.StartTime,
		EndTime:     task.EndTime,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func toTaskResponses(tasks []*entity.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, toTaskResponse(task))
	}

	return out
}

// taskIDParam parses the :id path segment.
func taskIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("task id must be a valid UUID")
	}

	return id, nil
}

// CreateTask handles the task creation request.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.CreateTask(c.Request().Context(), &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Status:      req.Status,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTaskResponse(task), "Task created successfully")
}

// ListTasks handles the task listing request.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	tasks, err := h.uc.ListTasks(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponses(tasks), "Tasks retrieved successfully")
}

// GetTask handles the single-task fetch request.
func (h *TaskHandler) GetTask(c echo.Context) error {
	id, err := taskIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.GetTask(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "Task retrieved successfully")
}

// UpdateTask handles the partial task update request.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, err := taskIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.UpdateTask(c.Request().Context(), id, &usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Status:      req.Status,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "Task updated successfully")
}

// DeleteTask handles the task deletion request and echoes the removed task.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := taskIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.DeleteTask(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "Task deleted successfully")
}
