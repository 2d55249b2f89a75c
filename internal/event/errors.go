package event

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrEmptyTitle       = errors.New("event title is empty")
	ErrInvalidRange     = errors.New("event end must be after start")
	ErrInvalidEventType = errors.New("invalid event type")
	ErrInvalidFilter    = errors.New("list filter 'to' must be after 'from'")
	ErrInvalidICS       = errors.New("invalid iCalendar body")
)
