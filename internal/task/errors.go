package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyTitle       = errors.New("task title is empty")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidTaskType  = errors.New("invalid task type")
	ErrInvalidEstimate  = errors.New("estimated hours must be positive")
	ErrPrepNotSupported = errors.New("prep material is only available for exam_prep and interview_prep tasks")
	ErrNoTasksToCreate  = errors.New("no tasks to create")
)
