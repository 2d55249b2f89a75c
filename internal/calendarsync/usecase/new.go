package usecase

import (
	"time"

	"productivity-calendar/internal/calendarsync"
	"productivity-calendar/internal/calendarsync/repository"
	"productivity-calendar/internal/document"
	eventRepository "productivity-calendar/internal/event/repository"
	pkgLog "productivity-calendar/pkg/log"
)

// Sources are the external systems the use case reads. A nil field makes
// the matching operation fail with its not-configured error.
type Sources struct {
	Google     calendarsync.RemoteCalendar
	CalendarID string
	Outlook    calendarsync.OutlookCalendar
	Mail       calendarsync.Mailbox
}

type implUseCase struct {
	l            pkgLog.Logger
	google       calendarsync.RemoteCalendar
	calendarID   string
	outlook      calendarsync.OutlookCalendar
	mail         calendarsync.Mailbox
	events       eventRepository.Repository
	integrations repository.Repository
	documents    document.UseCase
	now          func() time.Time
}

// New creates the sync UseCase.
func New(l pkgLog.Logger, src Sources, events eventRepository.Repository, integrations repository.Repository, documents document.UseCase) *implUseCase {
	return &implUseCase{
		l:            l,
		google:       src.Google,
		calendarID:   src.CalendarID,
		outlook:      src.Outlook,
		mail:         src.Mail,
		events:       events,
		integrations: integrations,
		documents:    documents,
		now:          time.Now,
	}
}
