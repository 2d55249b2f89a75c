package event

import (
	"context"

	"productivity-calendar/internal/model"
)

// UseCase defines the business logic interface for calendar events.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (EventOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (EventOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (EventOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// ImportICS upserts the VEVENTs of an iCalendar body, matching on ExternalID.
	ImportICS(ctx context.Context, sc model.Scope, input ImportICSInput) (ImportICSOutput, error)
	ExportICS(ctx context.Context, sc model.Scope, input ListInput) (ExportICSOutput, error)
}
