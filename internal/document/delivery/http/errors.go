package http

import (
	"errors"
	"net/http"

	"productivity-calendar/internal/document"
	pkgErrors "productivity-calendar/pkg/errors"
)

var (
	errMissingScope = pkgErrors.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	errMissingFile  = pkgErrors.NewHTTPError(http.StatusBadRequest, "a multipart 'file' is required")
	errFileTooLarge = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "document is too large")
	errCourseStart  = pkgErrors.NewHTTPError(http.StatusBadRequest, "course_start must be YYYY-MM-DD or RFC3339")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, document.ErrUnsupportedFormat),
		errors.Is(err, document.ErrUnreadable),
		errors.Is(err, document.ErrEmptyText):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
