package event

import (
	"time"

	"productivity-calendar/internal/model"
)

// DefaultImportHorizonDays bounds recurrence expansion on import.
const DefaultImportHorizonDays = 90

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	EventType   model.EventType
	Location    string
	TaskID      *string
}

// ListInput selects events whose start lies in [From, To]. Nil bounds are open.
type ListInput struct {
	From *time.Time
	To   *time.Time
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	EventType   *model.EventType
	Location    *string
}

type ImportICSInput struct {
	Body []byte
	// HorizonDays limits RRULE expansion from now. Defaults to DefaultImportHorizonDays.
	HorizonDays int
}

// --- UseCase Outputs ---

type EventOutput struct {
	Event model.Event
}

type ListOutput struct {
	Events []model.Event
}

type ImportICSOutput struct {
	Created   int
	Updated   int
	Skipped   int
	Truncated []string
}

type ExportICSOutput struct {
	Body  string
	Count int
}
