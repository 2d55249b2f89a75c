package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"productivity-calendar/internal/calendarsync"
	"productivity-calendar/internal/event/repository"
	"productivity-calendar/internal/model"
	"productivity-calendar/pkg/gcalendar"
	"productivity-calendar/pkg/outlook"
)

const untitled = "(no title)"

// remoteEvent is the provider-neutral shape both calendars are read into.
type remoteEvent struct {
	ID          string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

type fetchFunc func(ctx context.Context, from, to time.Time) ([]remoteEvent, error)

func (uc *implUseCase) SyncGoogle(ctx context.Context, sc model.Scope, input calendarsync.SyncInput) (calendarsync.SyncOutput, error) {
	if uc.google == nil {
		return calendarsync.SyncOutput{}, calendarsync.ErrCalendarNotConfigured
	}
	return uc.sync(ctx, sc, model.ProviderGoogle, model.EventSourceGoogle, input, func(ctx context.Context, from, to time.Time) ([]remoteEvent, error) {
		events, err := uc.google.ListEvents(ctx, gcalendar.ListEventsRequest{
			CalendarID: uc.calendarID,
			TimeMin:    from,
			TimeMax:    to,
			MaxResults: calendarsync.MaxRemoteEvents,
		})
		if err != nil {
			return nil, err
		}
		out := make([]remoteEvent, 0, len(events))
		for _, e := range events {
			out = append(out, remoteEvent{ID: e.ID, Title: e.Summary, Description: e.Description, Location: e.Location, Start: e.StartTime, End: e.EndTime})
		}
		return out, nil
	})
}

func (uc *implUseCase) SyncOutlook(ctx context.Context, sc model.Scope, input calendarsync.SyncInput) (calendarsync.SyncOutput, error) {
	if uc.outlook == nil {
		return calendarsync.SyncOutput{}, calendarsync.ErrOutlookNotConfigured
	}
	return uc.sync(ctx, sc, model.ProviderOutlook, model.EventSourceOutlook, input, func(ctx context.Context, from, to time.Time) ([]remoteEvent, error) {
		events, err := uc.outlook.ListEvents(ctx, outlook.ListEventsRequest{
			TimeMin:    from,
			TimeMax:    to,
			MaxResults: calendarsync.MaxRemoteEvents,
		})
		if err != nil {
			return nil, err
		}
		out := make([]remoteEvent, 0, len(events))
		for _, e := range events {
			out = append(out, remoteEvent{ID: e.ID, Title: e.Subject, Description: e.Preview, Location: e.Location, Start: e.Start, End: e.End})
		}
		return out, nil
	})
}

// sync upserts the window's remote events by ExternalID within source and
// records the run on the owner's integration row.
func (uc *implUseCase) sync(ctx context.Context, sc model.Scope, provider model.Provider, source model.EventSource, input calendarsync.SyncInput, fetch fetchFunc) (calendarsync.SyncOutput, error) {
	days := input.DaysAhead
	if days == 0 {
		days = calendarsync.DefaultDaysAhead
	}
	if days < 0 || days > calendarsync.MaxDaysAhead {
		return calendarsync.SyncOutput{}, calendarsync.ErrInvalidDaysAhead
	}

	now := uc.now()
	var (
		remote   []remoteEvent
		existing map[string]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		remote, err = fetch(gctx, now, now.AddDate(0, 0, days))
		return err
	})
	g.Go(func() error {
		var err error
		existing, err = uc.events.ListExternalIDs(gctx, repository.ListExternalIDsOptions{
			OwnerID: sc.UserID,
			Source:  source,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "uc.sync(%s) fetch: %v", provider, err)
		return calendarsync.SyncOutput{}, err
	}

	out := calendarsync.SyncOutput{Fetched: len(remote)}
	var toCreate []repository.CreateEventOptions
	seen := make(map[string]bool, len(remote))

	for _, re := range remote {
		if re.ID == "" || seen[re.ID] || !re.End.After(re.Start) {
			out.Skipped++
			continue
		}
		seen[re.ID] = true

		opt := toCreateOptions(sc.UserID, source, re)
		id, ok := existing[re.ID]
		if !ok {
			toCreate = append(toCreate, opt)
			continue
		}

		changed, err := uc.refresh(ctx, sc, id, opt)
		if err != nil {
			uc.l.Errorf(ctx, "uc.sync(%s) refresh %s: %v", provider, id, err)
			return calendarsync.SyncOutput{}, err
		}
		if changed {
			out.Updated++
		} else {
			out.Unchanged++
		}
	}

	created, err := uc.events.CreateEvents(ctx, toCreate)
	if err != nil {
		uc.l.Errorf(ctx, "uc.sync(%s) events.CreateEvents: %v", provider, err)
		return calendarsync.SyncOutput{}, err
	}
	out.Created = len(created)

	uc.touch(ctx, sc, provider, now)
	uc.l.Infof(ctx, "uc.sync(%s): fetched=%d created=%d updated=%d unchanged=%d skipped=%d",
		provider, out.Fetched, out.Created, out.Updated, out.Unchanged, out.Skipped)
	return out, nil
}

// refresh rewrites a stored event when the remote copy differs. The local
// event type is kept since the owner may have reclassified it.
func (uc *implUseCase) refresh(ctx context.Context, sc model.Scope, id string, opt repository.CreateEventOptions) (bool, error) {
	cur, err := uc.events.GetOneEvent(ctx, repository.GetOneEventOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		return false, err
	}
	if cur.ID == "" {
		return false, nil
	}

	if cur.Title == opt.Title &&
		cur.Description == opt.Description &&
		cur.Location == opt.Location &&
		cur.StartTime.Equal(opt.StartTime) &&
		cur.EndTime.Equal(opt.EndTime) {
		return false, nil
	}

	cur.Title = opt.Title
	cur.Description = opt.Description
	cur.Location = opt.Location
	cur.StartTime = opt.StartTime
	cur.EndTime = opt.EndTime
	if _, err := uc.events.UpdateEvent(ctx, repository.UpdateEventOptions{Event: cur}); err != nil {
		return false, err
	}
	return true, nil
}

func toCreateOptions(ownerID string, source model.EventSource, re remoteEvent) repository.CreateEventOptions {
	title := strings.TrimSpace(re.Title)
	if title == "" {
		title = untitled
	}
	return repository.CreateEventOptions{
		OwnerID:     ownerID,
		Title:       title,
		Description: re.Description,
		StartTime:   re.Start.UTC(),
		EndTime:     re.End.UTC(),
		EventType:   model.InferEventType(title),
		Location:    re.Location,
		ExternalID:  re.ID,
		Source:      source,
	}
}
