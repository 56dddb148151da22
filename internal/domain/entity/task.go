package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single task record. Tasks carry no owner reference: any
// authenticated user may read or modify any task.
type Task struct {
	ID          uuid.UUID // Unique identifier, generated by the database at creation.
	Title       string    // Short title of the task.
	Description string    // Free-form description.
	Duration    string    // Human-readable duration, e.g. "2 hours".
	Status      string    // Current status, defaults to "pending".
	Date        time.Time // Calendar day the task is scheduled on.
	StartTime   string    // Clock time the task starts, e.g. "09:00 AM".
	EndTime     string    // Clock time the task ends, e.g. "10:00 AM".
	CreatedAt   time.Time // Timestamp of when this task was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
