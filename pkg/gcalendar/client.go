package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"productivity-calendar/pkg/googleauth"
)

const pageSize = 250

var errStopPaging = errors.New("stop paging")

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials
// file. tokenPath is only read for OAuth desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	ts, err := googleauth.TokenSourceFromFile(ctx, credentialsPath, tokenPath, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: %w", err)
	}
	return newClient(ctx, option.WithTokenSource(ts))
}

// NewClientFromCredentialsJSON accepts a service account key or OAuth
// "installed" credentials plus the token written by scripts/gcal-auth.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	ts, err := googleauth.TokenSourceFromJSON(ctx, credentialsJSON, tokenPath, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: %w", err)
	}
	return newClient(ctx, option.WithTokenSource(ts))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	ev := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), ev).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: insert event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// ListEvents returns the confirmed and tentative instances overlapping
// [TimeMin, TimeMax) ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(pageSize)
	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}

	var out []Event
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			if item.Status == "cancelled" {
				continue
			}
			ev, ok := toEvent(item)
			if !ok {
				continue
			}
			out = append(out, ev)
			if req.MaxResults > 0 && len(out) >= req.MaxResults {
				return errStopPaging
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopPaging) {
		return nil, fmt.Errorf("gcalendar: list events: %w", err)
	}
	return out, nil
}

func toEvent(item *calendar.Event) (Event, bool) {
	start, startAllDay, ok := parseEventTime(item.Start)
	if !ok {
		return Event{}, false
	}
	end, _, ok := parseEventTime(item.End)
	if !ok || !end.After(start) {
		if !startAllDay {
			return Event{}, false
		}
		end = start.AddDate(0, 0, 1)
	}

	return Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
		Location:    item.Location,
		StartTime:   start,
		EndTime:     end,
		AllDay:      startAllDay,
	}, true
}

func parseEventTime(edt *calendar.EventDateTime) (time.Time, bool, bool) {
	if edt == nil {
		return time.Time{}, false, false
	}
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		return t, false, err == nil
	}
	if edt.Date != "" {
		loc := time.UTC
		if edt.TimeZone != "" {
			if l, err := time.LoadLocation(edt.TimeZone); err == nil {
				loc = l
			}
		}
		t, err := time.ParseInLocation("2006-01-02", edt.Date, loc)
		return t, true, err == nil
	}
	return time.Time{}, false, false
}

func calendarID(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}
