package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "taskman/internal/delivery/context"
	"taskman/internal/domain/constants"
	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/repository"
	"taskman/internal/domain/service"
	"taskman/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// taskDateLayout is the wire format for the task date field.
	taskDateLayout = "2006-01-02"

	// taskTimeLayout is the display format for start and end times ("09:30 AM").
	taskTimeLayout = "03:04 PM"

	// defaultTaskSpan is the gap between the default start and end times.
	defaultTaskSpan = time.Hour
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo  repository.TaskRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo  repository.TaskRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo:  params.TaskRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTask persists a new task, filling defaults for omitted fields:
// status "pending", date today, start time now, end time one hour later.
func (srv *taskService) CreateTask(ctx context.Context, input *usecase.CreateTaskInput) (*entity.Task, error) {
	now := srv.now()

	date := now
	if input.Date != "" {
		parsed, err := time.Parse(taskDateLayout, input.Date)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("date must use the YYYY-MM-DD format")
		}
		date = parsed
	}

	task := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		Status:      input.Status,
		Date:        date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
	}
	if task.Status == "" {
		task.Status = constants.TaskStatusPending
	}
	if task.StartTime == "" {
		task.StartTime = now.Format(taskTimeLayout)
	}
	if task.EndTime == "" {
		task.EndTime = now.Add(defaultTaskSpan).Format(taskTimeLayout)
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to create task", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Info("Task created", slog.Any("taskID", task.ID), slog.String("title", task.Title))
	srv.publishEvent(ctx, task, constants.TaskEventCreated)

	return task, nil
}

// GetTask fetches a single task by ID.
func (srv *taskService) GetTask(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task lookup by id")
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return task, nil
}

// ListTasks returns every stored task, newest first. Tasks carry no owner,
// so the listing is the same for every authenticated caller.
func (srv *taskService) ListTasks(ctx context.Context) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list tasks", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// UpdateTask applies a partial update to an existing task. Only non-nil
// input fields overwrite stored values.
func (srv *taskService) UpdateTask(ctx context.Context, id uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task update target lookup")
		}

		return nil, errors.Wrap(err, "failed to find task for update")
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Duration != nil {
		task.Duration = *input.Duration
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Date != nil {
		parsed, err := time.Parse(taskDateLayout, *input.Date)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("date must use the YYYY-MM-DD format")
		}
		task.Date = parsed
	}
	if input.StartTime != nil {
		task.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		task.EndTime = *input.EndTime
	}

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task vanished during update")
		}
		srv.log(ctx).Error("Failed to update task", slog.Any("taskID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update task")
	}

	srv.log(ctx).Info("Task updated", slog.Any("taskID", task.ID))
	srv.publishEvent(ctx, task, constants.TaskEventUpdated)

	return task, nil
}

// DeleteTask removes a task and returns its last stored state.
func (srv *taskService) DeleteTask(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task delete target lookup")
		}

		return nil, errors.Wrap(err, "failed to find task for delete")
	}

	if err := srv.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task vanished during delete")
		}
		srv.log(ctx).Error("Failed to delete task", slog.Any("taskID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to delete task")
	}

	srv.log(ctx).Info("Task deleted", slog.Any("taskID", id))
	srv.publishEvent(ctx, task, constants.TaskEventDeleted)

	return task, nil
}

// publishEvent emits a task lifecycle event. Publish failures are logged and
// swallowed: the write already committed and the HTTP response must not
// depend on the message broker.
func (srv *taskService) publishEvent(ctx context.Context, task *entity.Task, action string) {
	event := &service.TaskEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		TaskID:    task.ID.String(),
		Action:    action,
		Title:     task.Title,
		Status:    task.Status,
	}
	if err := srv.publisher.PublishTaskEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish task event",
			slog.String("action", action),
			slog.Any("taskID", task.ID),
			slog.Any("error", err))
	}
}
