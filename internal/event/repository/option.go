package repository

import (
	"time"

	"productivity-calendar/internal/model"
)

// CreateEventOptions holds parameters for inserting a new Event.
type CreateEventOptions struct {
	OwnerID     string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	EventType   model.EventType
	Location    string
	TaskID      *string
	ExternalID  string
	Source      model.EventSource
}

// GetOneEventOptions holds filter parameters for fetching a single Event.
type GetOneEventOptions struct {
	ID      string
	OwnerID string
}

// ListEventsOptions filters the owner's events. Zero values are ignored.
type ListEventsOptions struct {
	OwnerID   string
	StartFrom *time.Time
	StartTo   *time.Time
	// EndAfter keeps events still running at that instant.
	EndAfter *time.Time
	Source   model.EventSource
	TaskID   string
}

type ListExternalIDsOptions struct {
	OwnerID string
	Source  model.EventSource
}

// UpdateEventOptions carries the full, already merged Event to persist.
type UpdateEventOptions struct {
	Event model.Event
}

// DeleteEventOptions identifies the Event to remove.
type DeleteEventOptions struct {
	ID      string
	OwnerID string
}

type ReplaceTaskSessionsOptions struct {
	OwnerID  string
	TaskID   string
	Sessions []CreateEventOptions
}
