package usecase

import (
	"context"

	"productivity-calendar/internal/event"
	"productivity-calendar/internal/event/repository"
	"productivity-calendar/internal/model"
)

// List returns the owner's events ordered by start time.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input event.ListInput) (event.ListOutput, error) {
	events, err := uc.list(ctx, sc, input)
	if err != nil {
		return event.ListOutput{}, err
	}
	return event.ListOutput{Events: events}, nil
}

func (uc *implUseCase) list(ctx context.Context, sc model.Scope, input event.ListInput) ([]model.Event, error) {
	if input.From != nil && input.To != nil && input.To.Before(*input.From) {
		return nil, event.ErrInvalidFilter
	}

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{
		OwnerID:   sc.UserID,
		StartFrom: input.From,
		StartTo:   input.To,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List repo.ListEvents: %v", err)
		return nil, err
	}
	return events, nil
}
