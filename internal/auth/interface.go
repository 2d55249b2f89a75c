package auth

import (
	"context"

	"productivity-calendar/internal/model"
)

// UseCase registers accounts and issues bearer tokens.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (TokenOutput, error)
	Login(ctx context.Context, input LoginInput) (TokenOutput, error)
	Me(ctx context.Context, sc model.Scope) (model.User, error)
}
