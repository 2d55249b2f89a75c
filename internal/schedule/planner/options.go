package planner

import "time"

const (
	DefaultDayStartHour    = 8
	DefaultDayEndHour      = 22
	DefaultMinSessionHours = 1.0
	DefaultMaxSessionHours = 3.0
)

// Options tunes where prep sessions may be placed.
type Options struct {
	// Sessions are placed inside [DayStartHour, DayEndHour) of each local day.
	DayStartHour int
	DayEndHour   int
	// Location defines day boundaries. Defaults to the location of now.
	Location *time.Location

	MinSessionHours float64
	MaxSessionHours float64
}

// DefaultOptions returns the 08:00-22:00 window with 1-3 hour sessions.
func DefaultOptions() Options {
	return Options{
		DayStartHour:    DefaultDayStartHour,
		DayEndHour:      DefaultDayEndHour,
		MinSessionHours: DefaultMinSessionHours,
		MaxSessionHours: DefaultMaxSessionHours,
	}
}

func (o Options) withDefaults(now time.Time) Options {
	if o.DayStartHour < 0 || o.DayStartHour > 23 {
		o.DayStartHour = DefaultDayStartHour
	}
	if o.DayEndHour <= o.DayStartHour || o.DayEndHour > 24 {
		o.DayStartHour, o.DayEndHour = DefaultDayStartHour, DefaultDayEndHour
	}
	if o.Location == nil {
		o.Location = now.Location()
	}
	if o.MinSessionHours <= 0 {
		o.MinSessionHours = DefaultMinSessionHours
	}
	if o.MaxSessionHours < o.MinSessionHours {
		o.MaxSessionHours = DefaultMaxSessionHours
	}
	return o
}
