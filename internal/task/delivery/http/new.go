package http

import (
	"productivity-calendar/internal/task"
	"productivity-calendar/pkg/log"
)

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
