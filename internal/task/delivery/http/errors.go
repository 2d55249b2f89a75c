package http

import (
	"errors"
	"net/http"

	"productivity-calendar/internal/task"
	pkgErrors "productivity-calendar/pkg/errors"
)

var errMissingScope = pkgErrors.NewHTTPError(http.StatusUnauthorized, "unauthorized")

// mapError translates task errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidTaskType),
		errors.Is(err, task.ErrInvalidEstimate),
		errors.Is(err, task.ErrPrepNotSupported),
		errors.Is(err, task.ErrNoTasksToCreate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
