package usecase

import (
	"time"

	"productivity-calendar/internal/event/repository"
	pkgLog "productivity-calendar/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	now  func() time.Time
}

// New creates a new event UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		now:  time.Now,
	}
}
