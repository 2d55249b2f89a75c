package model

import (
	"errors"
	"strings"
	"time"

	"productivity-calendar/pkg/interval"
)

// ErrInvalidEventRange is returned when an event does not end after it starts.
var ErrInvalidEventRange = errors.New("event end must be after start")

type EventType string

const (
	EventTypeMeeting     EventType = "meeting"
	EventTypeInterview   EventType = "interview"
	EventTypeExam        EventType = "exam"
	EventTypeDeadline    EventType = "deadline"
	EventTypePrepSession EventType = "prep_session"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeMeeting, EventTypeInterview, EventTypeExam, EventTypeDeadline, EventTypePrepSession:
		return true
	}
	return false
}

// InferEventType guesses the type of an imported event from its title.
func InferEventType(title string) EventType {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "interview"):
		return EventTypeInterview
	case strings.Contains(t, "exam"), strings.Contains(t, "midterm"), strings.Contains(t, "final"), strings.Contains(t, "quiz"):
		return EventTypeExam
	case strings.Contains(t, "due"), strings.Contains(t, "deadline"):
		return EventTypeDeadline
	default:
		return EventTypeMeeting
	}
}

type EventSource string

const (
	EventSourceManual    EventSource = "manual"
	EventSourceGoogle    EventSource = "google"
	EventSourceOutlook   EventSource = "outlook"
	EventSourceICS       EventSource = "ics"
	EventSourceScheduler EventSource = "scheduler"
)

// Event is a block of time on the owner's calendar.
type Event struct {
	ID          string      `gorm:"primaryKey;size:36"`
	OwnerID     string      `gorm:"index;size:36;not null"`
	Title       string      `gorm:"size:255;not null"`
	Description string      `gorm:"type:text"`
	StartTime   time.Time   `gorm:"index;not null"`
	EndTime     time.Time   `gorm:"not null"`
	EventType   EventType   `gorm:"size:32"`
	Location    string      `gorm:"size:255"`
	TaskID      *string     `gorm:"index;size:36"`
	ExternalID  string      `gorm:"index;size:255"`
	Source      EventSource `gorm:"size:16"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate enforces end > start.
func (e Event) Validate() error {
	if !e.EndTime.After(e.StartTime) {
		return ErrInvalidEventRange
	}
	return nil
}

// Interval returns the busy interval the event occupies.
func (e Event) Interval() interval.Interval {
	return interval.New(e.StartTime, e.EndTime)
}

// DurationHours is the length of the event in hours.
func (e Event) DurationHours() float64 {
	return e.Interval().Hours()
}
