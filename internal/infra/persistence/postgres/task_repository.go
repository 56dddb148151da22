package postgres

import (
	"context"

	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/repository"
	"taskman/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the domain.TaskRepository interface using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// Create persists a new task entity to the database.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	// Update the entity with the generated ID and timestamps
	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// FindByID retrieves a single task by its unique ID.
func (repo *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&taskM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

// FindAll retrieves every task, newest first.
func (repo *taskRepository) FindAll(ctx context.Context) ([]*entity.Task, error) {
	var taskMs []model.TaskModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&taskMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskMs))
	for i := range taskMs {
		tasks = append(tasks, toTaskDomain(&taskMs[i]))
	}

	return tasks, nil
}

// Update modifies an existing task. A vanished row maps to the same
// not-found outcome as a failed lookup.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ?", task.ID).
		Updates(map[string]any{
			"title":       taskM.Title,
			"description": taskM.Description,
			"duration":    taskM.Duration,
			"status":      taskM.Status,
			"date":        taskM.Date,
			"start_time":  taskM.StartTime,
			"end_time":    taskM.EndTime,
		})
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task by its ID.
func (repo *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TaskModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Duration:    data.Duration,
		Status:      data.Status,
		Date:        data.Date,
		StartTime:   data.StartTime,
		EndTime:     data.EndTime,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel for persistence.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Duration:    data.Duration,
		Status:      data.Status,
		Date:        data.Date,
		StartTime:   data.StartTime,
		EndTime:     data.EndTime,
	}
}
