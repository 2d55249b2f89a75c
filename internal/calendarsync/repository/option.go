package repository

import (
	"time"

	"productivity-calendar/internal/model"
)

// TouchSyncOptions records a successful sync of Provider at At.
type TouchSyncOptions struct {
	OwnerID  string
	Provider model.Provider
	At       time.Time
}

// ListIntegrationsOptions holds filter parameters for listing integrations.
type ListIntegrationsOptions struct {
	OwnerID string
}
