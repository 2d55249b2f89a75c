package http

import (
	"productivity-calendar/internal/schedule"
	"productivity-calendar/pkg/log"
)

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for workload and prep scheduling.
func New(l log.Logger, uc schedule.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
