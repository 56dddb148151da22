package repository

import (
	"context"
	"errors"

	"taskman/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task does not exist.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard CRUD operations for task persistence.
type TaskRepository interface {
	// Create persists a new task and fills in the generated ID and timestamps.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a single task by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// FindAll retrieves every task. The API exposes no pagination.
	FindAll(ctx context.Context) ([]*entity.Task, error)

	// Update modifies an existing task.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
