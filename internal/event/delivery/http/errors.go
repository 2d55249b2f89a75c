package http

import (
	"errors"
	"net/http"

	"productivity-calendar/internal/event"
	pkgErrors "productivity-calendar/pkg/errors"
)

var (
	errMissingScope = pkgErrors.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	errMissingICS   = pkgErrors.NewHTTPError(http.StatusBadRequest, "an iCalendar body or a multipart 'file' is required")
	errICSTooLarge  = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "calendar file is too large")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, event.ErrEmptyTitle),
		errors.Is(err, event.ErrInvalidRange),
		errors.Is(err, event.ErrInvalidEventType),
		errors.Is(err, event.ErrInvalidFilter),
		errors.Is(err, event.ErrInvalidICS):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
