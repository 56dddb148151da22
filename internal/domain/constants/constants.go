// Package constants holds shared domain-level constant values.
package constants

// Task status values.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

// Task event actions published to the event bus.
const (
	TaskEventCreated = "task.created"
	TaskEventUpdated = "task.updated"
	TaskEventDeleted = "task.deleted"
)

// Pub/Sub provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
