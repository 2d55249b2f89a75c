package usecase

import (
	"context"
	"strings"
	"time"

	"productivity-calendar/internal/event"
	"productivity-calendar/internal/event/repository"
	"productivity-calendar/internal/model"
	"productivity-calendar/pkg/ics"
)

// importLookback keeps recently past occurrences on import.
const importLookback = 30 * 24 * time.Hour

// ImportICS expands the calendar over [now-30d, now+horizon] and upserts
// each occurrence by ExternalID. Re-importing the same file is idempotent.
func (uc *implUseCase) ImportICS(ctx context.Context, sc model.Scope, input event.ImportICSInput) (event.ImportICSOutput, error) {
	parsed, err := ics.Parse(input.Body)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ImportICS ics.Parse: %v", err)
		return event.ImportICSOutput{}, event.ErrInvalidICS
	}

	horizon := input.HorizonDays
	if horizon <= 0 {
		horizon = event.DefaultImportHorizonDays
	}
	now := uc.now()
	expanded, err := ics.Expand(parsed.Events, ics.ExpandConfig{
		RangeStart: now.Add(-importLookback),
		RangeEnd:   now.AddDate(0, 0, horizon),
		Location:   time.UTC,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ImportICS ics.Expand: %v", err)
		return event.ImportICSOutput{}, err
	}
	if len(expanded.InvalidRules) > 0 {
		uc.l.Warnf(ctx, "uc.ImportICS: unparsable RRULE for %v", expanded.InvalidRules)
	}

	existing, err := uc.repo.ListExternalIDs(ctx, repository.ListExternalIDsOptions{
		OwnerID: sc.UserID,
		Source:  model.EventSourceICS,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ImportICS repo.ListExternalIDs: %v", err)
		return event.ImportICSOutput{}, err
	}

	out := event.ImportICSOutput{Skipped: parsed.Skipped + len(expanded.InvalidRules), Truncated: expanded.Truncated}
	var toCreate []repository.CreateEventOptions
	seen := make(map[string]bool, len(expanded.Occurrences))

	for _, occ := range expanded.Occurrences {
		extID := occ.ExternalID()
		if seen[extID] {
			continue
		}
		seen[extID] = true

		opt := occurrenceToOptions(sc.UserID, occ)
		id, ok := existing[extID]
		if !ok {
			toCreate = append(toCreate, opt)
			continue
		}

		_, err := uc.repo.UpdateEvent(ctx, repository.UpdateEventOptions{Event: model.Event{
			ID:          id,
			OwnerID:     sc.UserID,
			Title:       opt.Title,
			Description: opt.Description,
			StartTime:   opt.StartTime,
			EndTime:     opt.EndTime,
			EventType:   opt.EventType,
			Location:    opt.Location,
			ExternalID:  opt.ExternalID,
			Source:      opt.Source,
		}})
		if err != nil {
			uc.l.Errorf(ctx, "uc.ImportICS repo.UpdateEvent: %v", err)
			return event.ImportICSOutput{}, err
		}
		out.Updated++
	}

	created, err := uc.repo.CreateEvents(ctx, toCreate)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ImportICS repo.CreateEvents: %v", err)
		return event.ImportICSOutput{}, err
	}
	out.Created = len(created)

	uc.l.Infof(ctx, "uc.ImportICS: created=%d updated=%d skipped=%d", out.Created, out.Updated, out.Skipped)
	return out, nil
}

// ExportICS renders the owner's events, optionally limited to a start window.
func (uc *implUseCase) ExportICS(ctx context.Context, sc model.Scope, input event.ListInput) (event.ExportICSOutput, error) {
	events, err := uc.list(ctx, sc, input)
	if err != nil {
		return event.ExportICSOutput{}, err
	}

	out := make([]ics.ExportEvent, len(events))
	for i, e := range events {
		uid := e.ExternalID
		if uid == "" {
			uid = e.ID
		}
		out[i] = ics.ExportEvent{
			UID:         uid,
			Summary:     e.Title,
			Description: e.Description,
			Location:    e.Location,
			Category:    string(e.EventType),
			Start:       e.StartTime,
			End:         e.EndTime,
			Created:     e.CreatedAt,
			Modified:    e.UpdatedAt,
		}
	}

	return event.ExportICSOutput{
		Body:  ics.Export(ics.DefaultProductID, out, uc.now()),
		Count: len(out),
	}, nil
}

func occurrenceToOptions(ownerID string, occ ics.Occurrence) repository.CreateEventOptions {
	title := strings.TrimSpace(occ.Summary)
	if title == "" {
		title = untitled
	}
	return repository.CreateEventOptions{
		OwnerID:     ownerID,
		Title:       title,
		Description: occ.Description,
		StartTime:   occ.Start,
		EndTime:     occ.End,
		EventType:   model.InferEventType(title),
		Location:    occ.Location,
		ExternalID:  occ.ExternalID(),
		Source:      model.EventSourceICS,
	}
}
