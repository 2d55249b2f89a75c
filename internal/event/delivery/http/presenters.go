package http

import (
	"time"

	"productivity-calendar/internal/event"
	"productivity-calendar/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Title       string    `json:"title"      binding:"required,max=255"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time"   binding:"required"`
	EventType   string    `json:"event_type"`
	Location    string    `json:"location"`
	TaskID      *string   `json:"task_id"`
}

func (r createReq) toInput() event.CreateInput {
	return event.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		EventType:   model.EventType(r.EventType),
		Location:    r.Location,
		TaskID:      r.TaskID,
	}
}

type listReq struct {
	From *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   *time.Time `form:"to"   time_format:"2006-01-02T15:04:05Z07:00"`
}

func (r listReq) toInput() event.ListInput {
	return event.ListInput{From: r.From, To: r.To}
}

type updateReq struct {
	ID          string     `json:"-"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	EventType   *string    `json:"event_type"`
	Location    *string    `json:"location"`
}

func (r updateReq) toInput() event.UpdateInput {
	in := event.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Location:    r.Location,
	}
	if r.EventType != nil {
		et := model.EventType(*r.EventType)
		in.EventType = &et
	}
	return in
}

// --- Response DTOs ---

type EventResp struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
	EventType     string    `json:"event_type"`
	Location      string    `json:"location,omitempty"`
	TaskID        *string   `json:"task_id,omitempty"`
	Source        string    `json:"source"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewEventResp renders an event. Exported for the schedule and sync handlers.
func NewEventResp(e model.Event) EventResp {
	return EventResp{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		DurationHours: e.DurationHours(),
		EventType:     string(e.EventType),
		Location:      e.Location,
		TaskID:        e.TaskID,
		Source:        string(e.Source),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

type itemResp struct {
	Event EventResp `json:"event"`
}

type listResp struct {
	Events []EventResp `json:"events"`
	Count  int         `json:"count"`
}

func (h *handler) newListResp(out event.ListOutput) listResp {
	events := make([]EventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = NewEventResp(e)
	}
	return listResp{Events: events, Count: len(events)}
}

type importResp struct {
	Created   int      `json:"created"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Truncated []string `json:"truncated,omitempty"`
}

func (h *handler) newImportResp(out event.ImportICSOutput) importResp {
	return importResp{Created: out.Created, Updated: out.Updated, Skipped: out.Skipped, Truncated: out.Truncated}
}
