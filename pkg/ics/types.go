package ics

import (
	"errors"
	"time"
)

var (
	ErrEmptyBody    = errors.New("ics: empty body")
	ErrInvalidRange = errors.New("ics: range end is before range start")
)

// ParsedEvent is a VEVENT before recurrence expansion.
type ParsedEvent struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Status      string

	Start  time.Time
	End    time.Time
	AllDay bool

	RawRRule string
	ExDates  []time.Time
	// Recurrence is the RECURRENCE-ID of an override instance.
	Recurrence *time.Time
}

// IsOverride reports whether the event replaces one instance of a series.
func (e ParsedEvent) IsOverride() bool {
	return e.Recurrence != nil
}

// ParseResult holds the usable events of a calendar and how many VEVENTs were dropped.
type ParseResult struct {
	Events  []ParsedEvent
	Skipped int
}

// Occurrence is one concrete instance after expansion.
type Occurrence struct {
	UID string
	// InstanceKey is empty for single events and the UTC start for
	// instances of a recurring series.
	InstanceKey string

	Summary     string
	Description string
	Location    string
	AllDay      bool

	Start time.Time
	End   time.Time
}

// ExternalID identifies the occurrence across imports.
func (o Occurrence) ExternalID() string {
	if o.InstanceKey == "" {
		return o.UID
	}
	return o.UID + "/" + o.InstanceKey
}

// ExpandConfig bounds recurrence expansion.
type ExpandConfig struct {
	RangeStart time.Time
	RangeEnd   time.Time
	// Location is applied to every occurrence. Defaults to UTC.
	Location *time.Location
	// MaxOccurrencesPerEvent caps a single series. Defaults to 500.
	MaxOccurrencesPerEvent int
}

type ExpandResult struct {
	Occurrences []Occurrence
	// Truncated lists UIDs that hit MaxOccurrencesPerEvent.
	Truncated []string
	// InvalidRules lists UIDs whose RRULE could not be parsed.
	InvalidRules []string
}

// ExportEvent is the input of Export.
type ExportEvent struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Category    string
	Start       time.Time
	End         time.Time
	Created     time.Time
	Modified    time.Time
}
