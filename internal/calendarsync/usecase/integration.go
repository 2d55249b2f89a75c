package usecase

import (
	"context"
	"time"

	"productivity-calendar/internal/calendarsync/repository"
	"productivity-calendar/internal/model"
)

func (uc *implUseCase) ListIntegrations(ctx context.Context, sc model.Scope) ([]model.CalendarIntegration, error) {
	rows, err := uc.integrations.ListIntegrations(ctx, repository.ListIntegrationsOptions{OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListIntegrations: %v", err)
		return nil, err
	}
	return rows, nil
}

// touch records a successful run. A failure here does not undo the sync.
func (uc *implUseCase) touch(ctx context.Context, sc model.Scope, provider model.Provider, at time.Time) {
	if _, err := uc.integrations.TouchSync(ctx, repository.TouchSyncOptions{OwnerID: sc.UserID, Provider: provider, At: at}); err != nil {
		uc.l.Warnf(ctx, "uc.touch(%s): %v", provider, err)
	}
}

// lastSync is the zero time when the provider has never run for the owner.
func (uc *implUseCase) lastSync(ctx context.Context, sc model.Scope, provider model.Provider) (time.Time, error) {
	rows, err := uc.integrations.ListIntegrations(ctx, repository.ListIntegrationsOptions{OwnerID: sc.UserID})
	if err != nil {
		return time.Time{}, err
	}
	for _, r := range rows {
		if r.Provider == provider && r.LastSync != nil {
			return *r.LastSync, nil
		}
	}
	return time.Time{}, nil
}
