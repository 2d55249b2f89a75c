package gcalendar

import (
	"time"

	"productivity-calendar/pkg/googleauth"
)

// DefaultCalendarID is used when a request names no calendar.
const DefaultCalendarID = "primary"

var ErrUnsupportedCredentials = googleauth.ErrUnsupportedCredentials

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string    // IANA name, e.g. "Europe/Berlin"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	// AllDay events carry dates only; EndTime is the exclusive next midnight.
	AllDay bool
}

// ListEventsRequest is the input for listing Google Calendar events.
// Recurring series are expanded into single instances.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	// MaxResults caps the total across pages; zero means no cap.
	MaxResults int
}
