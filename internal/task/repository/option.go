package repository

import (
	"time"

	"gorm.io/datatypes"

	"productivity-calendar/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	OwnerID          string
	Title            string
	Description      string
	Deadline         *time.Time
	EstimatedHours   float64
	Priority         model.Priority
	TaskType         model.TaskType
	SourceType       model.SourceType
	SourceFile       string
	ExtractionMethod model.ExtractionMethod
	PrepMaterial     datatypes.JSON
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID      string
	OwnerID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	OwnerID      string
	Completed    *bool
	TaskType     model.TaskType
	DeadlineFrom *time.Time
	DeadlineTo   *time.Time
	Limit        int
	Offset       int
	OrderBy      string
}

// UpdateTaskOptions carries the full, already merged Task to persist.
type UpdateTaskOptions struct {
	Task model.Task
}

// DeleteTaskOptions identifies the Task to remove.
type DeleteTaskOptions struct {
	ID      string
	OwnerID string
}
