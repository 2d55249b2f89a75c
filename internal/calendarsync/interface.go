package calendarsync

import (
	"context"

	"productivity-calendar/internal/model"
	"productivity-calendar/pkg/gcalendar"
	"productivity-calendar/pkg/gmail"
	"productivity-calendar/pkg/outlook"
)

// UseCase imports events from external calendars and deadlines from the
// mailbox into the owner's calendar.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// SyncGoogle upserts remote events by their Google ID, source=google.
	SyncGoogle(ctx context.Context, sc model.Scope, input SyncInput) (SyncOutput, error)
	// SyncOutlook upserts remote events by their Graph ID, source=outlook.
	SyncOutlook(ctx context.Context, sc model.Scope, input SyncInput) (SyncOutput, error)
	// ScanGmail runs deadline extraction over recent deadline-like messages.
	ScanGmail(ctx context.Context, sc model.Scope, input MailScanInput) (MailScanOutput, error)
	// ListIntegrations returns the providers the owner has synced from.
	ListIntegrations(ctx context.Context, sc model.Scope) ([]model.CalendarIntegration, error)
}

// RemoteCalendar is the slice of the Google Calendar client the sync needs.
type RemoteCalendar interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// OutlookCalendar is the slice of the Graph client the sync needs.
type OutlookCalendar interface {
	ListEvents(ctx context.Context, req outlook.ListEventsRequest) ([]outlook.Event, error)
}

// Mailbox is the slice of the Gmail client the scan needs.
type Mailbox interface {
	ListMessages(ctx context.Context, req gmail.ListRequest) ([]gmail.Message, error)
}
