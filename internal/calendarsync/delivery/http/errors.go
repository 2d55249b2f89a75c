package http

import (
	"errors"
	"net/http"

	"productivity-calendar/internal/calendarsync"
	pkgErrors "productivity-calendar/pkg/errors"
)

var errMissingScope = pkgErrors.NewHTTPError(http.StatusUnauthorized, "unauthorized")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendarsync.ErrCalendarNotConfigured),
		errors.Is(err, calendarsync.ErrOutlookNotConfigured),
		errors.Is(err, calendarsync.ErrMailNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, calendarsync.ErrInvalidDaysAhead),
		errors.Is(err, calendarsync.ErrInvalidDaysBack):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
