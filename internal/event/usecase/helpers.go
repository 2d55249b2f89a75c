package usecase

import (
	"strings"

	"productivity-calendar/internal/event"
	"productivity-calendar/internal/model"
)

const untitled = "(no title)"

func normalizeCreateInput(in *event.CreateInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return event.ErrEmptyTitle
	}
	if in.EventType == "" {
		in.EventType = model.EventTypeMeeting
	} else if !in.EventType.Valid() {
		return event.ErrInvalidEventType
	}
	if !in.EndTime.After(in.StartTime) {
		return event.ErrInvalidRange
	}
	return nil
}

func applyUpdate(e *model.Event, in event.UpdateInput) error {
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return event.ErrEmptyTitle
		}
		e.Title = title
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.StartTime != nil {
		e.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		e.EndTime = *in.EndTime
	}
	if in.EventType != nil {
		if !in.EventType.Valid() {
			return event.ErrInvalidEventType
		}
		e.EventType = *in.EventType
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if err := e.Validate(); err != nil {
		return event.ErrInvalidRange
	}
	return nil
}
