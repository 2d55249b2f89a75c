package usecase

import (
	"time"

	"productivity-calendar/internal/task/repository"
	"productivity-calendar/pkg/llmprovider"
	pkgLog "productivity-calendar/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	// llm may be nil; prep material then uses the built-in samples.
	llm llmprovider.TextGenerator
	now func() time.Time
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, llm llmprovider.TextGenerator) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		llm:  llm,
		now:  time.Now,
	}
}
