package usecase

import (
	"context"

	"productivity-calendar/internal/event"
	"productivity-calendar/internal/event/repository"
	"productivity-calendar/internal/model"
)

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (event.EventOutput, error) {
	e, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return event.EventOutput{}, err
	}
	return event.EventOutput{Event: e}, nil
}

// Update applies a partial update. The merged event must still end after it starts.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input event.UpdateInput) (event.EventOutput, error) {
	e, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return event.EventOutput{}, err
	}

	if err := applyUpdate(&e, input); err != nil {
		return event.EventOutput{}, err
	}

	updated, err := uc.repo.UpdateEvent(ctx, repository.UpdateEventOptions{Event: e})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update repo.UpdateEvent: %v", err)
		return event.EventOutput{}, err
	}
	if updated.ID == "" {
		return event.EventOutput{}, event.ErrEventNotFound
	}
	return event.EventOutput{Event: updated}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getOwned(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteEvent(ctx, repository.DeleteEventOptions{ID: id, OwnerID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete repo.DeleteEvent: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (model.Event, error) {
	e, err := uc.repo.GetOneEvent(ctx, repository.GetOneEventOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned repo.GetOneEvent: %v", err)
		return model.Event{}, err
	}
	if e.ID == "" {
		return model.Event{}, event.ErrEventNotFound
	}
	return e, nil
}
