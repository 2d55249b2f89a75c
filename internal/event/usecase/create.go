package usecase

import (
	"context"

	"productivity-calendar/internal/event"
	"productivity-calendar/internal/event/repository"
	"productivity-calendar/internal/model"
)

// Create adds a manual event to the owner's calendar.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateInput) (event.EventOutput, error) {
	if err := normalizeCreateInput(&input); err != nil {
		return event.EventOutput{}, err
	}

	e, err := uc.repo.CreateEvent(ctx, repository.CreateEventOptions{
		OwnerID:     sc.UserID,
		Title:       input.Title,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		EventType:   input.EventType,
		Location:    input.Location,
		TaskID:      input.TaskID,
		Source:      model.EventSourceManual,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create repo.CreateEvent: %v", err)
		return event.EventOutput{}, err
	}
	return event.EventOutput{Event: e}, nil
}
