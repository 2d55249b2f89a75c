package task

import (
	"context"

	"productivity-calendar/internal/model"
)

// UseCase defines the business logic interface for the task domain.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	// CreateBulk stores tasks produced by document extraction in one go.
	CreateBulk(ctx context.Context, sc model.Scope, input CreateBulkInput) (CreateBulkOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	ToggleComplete(ctx context.Context, sc model.Scope, id string) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// RegeneratePrep replaces the prep material of an exam or interview task.
	RegeneratePrep(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
}
