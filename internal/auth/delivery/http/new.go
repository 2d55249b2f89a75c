package http

import (
	"productivity-calendar/internal/auth"
	"productivity-calendar/pkg/log"
)

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

// New creates a new HTTP handler for authentication.
func New(l log.Logger, uc auth.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
