package repository

import (
	"context"

	"productivity-calendar/internal/model"
)

// Repository is the composed interface for the event data store.
type Repository interface {
	EventRepository
}

// EventRepository defines all data access methods for the Event entity.
// Every method is scoped to OwnerID.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	CreateEvents(ctx context.Context, opts []CreateEventOptions) ([]model.Event, error)
	// GetOneEvent returns a zero Event (ID == "") when nothing matches.
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (model.Event, error)
	// ListEvents returns events ordered by start time.
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	// ListExternalIDs maps ExternalID to event ID for the owner's events of a source.
	ListExternalIDs(ctx context.Context, opt ListExternalIDsOptions) (map[string]string, error)
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) (model.Event, error)
	DeleteEvent(ctx context.Context, opt DeleteEventOptions) error

	// ReplaceTaskSessions deletes the scheduler sessions of a task and inserts
	// the given ones in a single transaction.
	ReplaceTaskSessions(ctx context.Context, opt ReplaceTaskSessionsOptions) ([]model.Event, error)
}
