package http

import (
	"productivity-calendar/internal/calendarsync"
	"productivity-calendar/pkg/log"
)

type handler struct {
	l  log.Logger
	uc calendarsync.UseCase
}

// New creates a new HTTP handler for calendar sync.
func New(l log.Logger, uc calendarsync.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
