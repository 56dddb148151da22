package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskModel mirrors the 'tasks' table. Tasks carry no foreign key to users:
// task records are shared across all authenticated accounts.
type TaskModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Duration    string    `gorm:"type:varchar(100)"`
	Status      string    `gorm:"type:varchar(50);not null;default:'pending'"`
	Date        time.Time `gorm:"type:date;not null"`
	StartTime   string    `gorm:"type:varchar(20)"`
	EndTime     string    `gorm:"type:varchar(20)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
