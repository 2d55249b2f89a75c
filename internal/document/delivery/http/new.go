package http

import (
	"productivity-calendar/internal/document"
	"productivity-calendar/pkg/log"
)

type handler struct {
	l  log.Logger
	uc document.UseCase
	// maxUploadBytes bounds the size of an uploaded document.
	maxUploadBytes int64
}

const defaultMaxUploadBytes = 10 << 20

// New creates a new HTTP handler for document extraction.
func New(l log.Logger, uc document.UseCase) *handler {
	return &handler{l: l, uc: uc, maxUploadBytes: defaultMaxUploadBytes}
}
