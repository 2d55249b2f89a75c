package model

import "time"

type Provider string

const (
	ProviderGoogle  Provider = "google"
	ProviderOutlook Provider = "outlook"
	ProviderGmail   Provider = "gmail"
)

// CalendarIntegration records that an owner has pulled data from a provider.
// The row is created on the first successful sync and touched on every
// later one.
type CalendarIntegration struct {
	ID        string     `gorm:"primaryKey;size:36"`
	OwnerID   string     `gorm:"uniqueIndex:idx_integration_owner_provider;size:36;not null"`
	Provider  Provider   `gorm:"uniqueIndex:idx_integration_owner_provider;size:16;not null"`
	IsActive  bool       `gorm:"not null;default:true"`
	LastSync  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
