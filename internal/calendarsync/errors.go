package calendarsync

import "errors"

var (
	ErrCalendarNotConfigured = errors.New("google calendar is not configured")
	ErrOutlookNotConfigured  = errors.New("outlook calendar is not configured")
	ErrMailNotConfigured     = errors.New("gmail is not configured")
	ErrInvalidDaysAhead      = errors.New("days_ahead must be between 1 and 365")
	ErrInvalidDaysBack       = errors.New("days_back must be between 1 and 90")
)
