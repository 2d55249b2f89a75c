package repository

import (
	"context"

	"productivity-calendar/internal/model"
)

// Repository is the composed interface for the calendar sync data store.
type Repository interface {
	IntegrationRepository
}

// IntegrationRepository stores one row per owner and provider.
type IntegrationRepository interface {
	// TouchSync creates the row on first use and marks it active with
	// LastSync = At afterwards.
	TouchSync(ctx context.Context, opt TouchSyncOptions) (model.CalendarIntegration, error)
	// ListIntegrations returns the owner's rows ordered by provider.
	ListIntegrations(ctx context.Context, opt ListIntegrationsOptions) ([]model.CalendarIntegration, error)
}
