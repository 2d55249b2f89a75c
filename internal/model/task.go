package model

import (
	"time"

	"gorm.io/datatypes"
)

// DefaultEstimatedHours is assumed for tasks that carry no estimate.
const DefaultEstimatedHours = 5.0

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type TaskType string

const (
	TaskTypeAssignment    TaskType = "assignment"
	TaskTypeExamPrep      TaskType = "exam_prep"
	TaskTypeInterviewPrep TaskType = "interview_prep"
	TaskTypeReading       TaskType = "reading"
	TaskTypeOther         TaskType = "other"
)

// Valid reports whether t is a known task type.
func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeAssignment, TaskTypeExamPrep, TaskTypeInterviewPrep, TaskTypeReading, TaskTypeOther:
		return true
	}
	return false
}

// SupportsPrep reports whether prep material can be generated for t.
func (t TaskType) SupportsPrep() bool {
	return t == TaskTypeExamPrep || t == TaskTypeInterviewPrep
}

type SourceType string

const (
	SourceTypeManual   SourceType = "manual"
	SourceTypeSyllabus SourceType = "syllabus"
	SourceTypeText     SourceType = "text"
	SourceTypeEmail    SourceType = "email"
)

type ExtractionMethod string

const (
	ExtractionMethodNone     ExtractionMethod = ""
	ExtractionMethodLLM      ExtractionMethod = "llm"
	ExtractionMethodFallback ExtractionMethod = "fallback"
)

// Task is a unit of work, optionally with a deadline and an effort estimate.
type Task struct {
	ID               string           `gorm:"primaryKey;size:36"`
	OwnerID          string           `gorm:"index;size:36;not null"`
	Title            string           `gorm:"size:255;not null"`
	Description      string           `gorm:"type:text"`
	Deadline         *time.Time       `gorm:"index"`
	EstimatedHours   float64
	Priority         Priority         `gorm:"size:16"`
	TaskType         TaskType         `gorm:"size:32"`
	Completed        bool             `gorm:"index"`
	SourceType       SourceType       `gorm:"size:16"`
	SourceFile       string           `gorm:"size:255"`
	ExtractionMethod ExtractionMethod `gorm:"size:16"`
	PrepMaterial     datatypes.JSON
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EffectiveHours returns the estimate, or DefaultEstimatedHours when none is set.
func (t Task) EffectiveHours() float64 {
	if t.EstimatedHours <= 0 {
		return DefaultEstimatedHours
	}
	return t.EstimatedHours
}
