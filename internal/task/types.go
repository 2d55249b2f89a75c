package task

import (
	"time"

	"productivity-calendar/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title          string
	Description    string
	Deadline       *time.Time
	EstimatedHours float64
	Priority       model.Priority
	TaskType       model.TaskType
	GeneratePrep   bool
}

type CreateBulkInput struct {
	Tasks            []CreateInput
	SourceType       model.SourceType
	SourceFile       string
	ExtractionMethod model.ExtractionMethod
}

type ListInput struct {
	Completed *bool
	TaskType  model.TaskType
	Limit     int
	Offset    int
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID             string
	Title          *string
	Description    *string
	Deadline       *time.Time
	ClearDeadline  bool
	EstimatedHours *float64
	Priority       *model.Priority
	TaskType       *model.TaskType
	Completed      *bool
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task         model.Task
	PrepMaterial model.PrepMaterial
}

type CreateBulkOutput struct {
	Tasks []model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task         model.Task
	PrepMaterial model.PrepMaterial
}

type UpdateOutput struct {
	Task model.Task
}
