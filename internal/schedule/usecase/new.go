package usecase

import (
	"time"

	eventRepo "productivity-calendar/internal/event/repository"
	"productivity-calendar/internal/schedule/planner"
	taskRepo "productivity-calendar/internal/task/repository"
	pkgLog "productivity-calendar/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	taskRepo  taskRepo.Repository
	eventRepo eventRepo.Repository
	opt       planner.Options
	now       func() time.Time
}

// New creates a new schedule UseCase instance.
func New(l pkgLog.Logger, tr taskRepo.Repository, er eventRepo.Repository, opt planner.Options) *implUseCase {
	return &implUseCase{
		l:         l,
		taskRepo:  tr,
		eventRepo: er,
		opt:       opt,
		now:       time.Now,
	}
}
