package usecase

import (
	"context"

	"taskman/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data accepted when creating a task. Omitted
// fields receive defaults: status "pending", date today, start time now,
// end time one hour later.
type CreateTaskInput struct {
	Title       string
	Description string
	Duration    string
	Status      string
	Date        string // "2006-01-02"; empty means today
	StartTime   string
	EndTime     string
}

// UpdateTaskInput carries a partial update; nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Duration    *string
	Status      *string
	Date        *string
	StartTime   *string
	EndTime     *string
}

// TaskUsecase defines the interface for task-related business operations.
type TaskUsecase interface {
	CreateTask(ctx context.Context, input *CreateTaskInput) (*entity.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	ListTasks(ctx context.Context) ([]*entity.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) (*entity.Task, error)
}
