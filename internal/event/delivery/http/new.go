package http

import (
	"productivity-calendar/internal/event"
	"productivity-calendar/pkg/log"
)

type handler struct {
	l  log.Logger
	uc event.UseCase
	// maxICSBytes bounds the size of an imported calendar.
	maxICSBytes int64
}

const defaultMaxICSBytes = 5 << 20

// New creates a new HTTP handler for calendar events.
func New(l log.Logger, uc event.UseCase) *handler {
	return &handler{l: l, uc: uc, maxICSBytes: defaultMaxICSBytes}
}
