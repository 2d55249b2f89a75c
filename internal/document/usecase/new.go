package usecase

import (
	"productivity-calendar/internal/document/extractor"
	"productivity-calendar/internal/task"
	"productivity-calendar/pkg/cache"
	pkgLog "productivity-calendar/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	tasks     task.UseCase
	extractor *extractor.Extractor
	// cache may be nil; every request then runs the full pipeline.
	cache        cache.Cache
	previewChars int
}

// New creates a new document UseCase instance.
func New(l pkgLog.Logger, tasks task.UseCase, ex *extractor.Extractor, c cache.Cache, previewChars int) *implUseCase {
	if previewChars <= 0 {
		previewChars = 500
	}
	return &implUseCase{
		l:            l,
		tasks:        tasks,
		extractor:    ex,
		cache:        c,
		previewChars: previewChars,
	}
}
