package repository

import (
	"context"

	"productivity-calendar/internal/model"
)

// Repository persists user accounts.
//
//go:generate mockery --name Repository
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	// GetOneUser returns a zero User when nothing matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
}
