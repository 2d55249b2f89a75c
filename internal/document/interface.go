package document

import (
	"context"

	"productivity-calendar/internal/model"
)

// UseCase turns documents and pasted text into tasks.
//
//go:generate mockery --name UseCase
type UseCase interface {
	UploadSyllabus(ctx context.Context, sc model.Scope, input UploadInput) (ExtractOutput, error)
	ParseText(ctx context.Context, sc model.Scope, input ParseTextInput) (ExtractOutput, error)
}
