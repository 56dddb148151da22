package service

import (
	"context"
)

// TaskEvent represents a task lifecycle change published for async consumers
// (e.g. sync or reporting pipelines).
type TaskEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	TaskID    string `json:"task_id"`
	Action    string `json:"action"` // task.created, task.updated, task.deleted
	Title     string `json:"title,omitempty"`
	Status    string `json:"status,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTaskEvent publishes a task lifecycle event for async processing
	PublishTaskEvent(ctx context.Context, event *TaskEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
