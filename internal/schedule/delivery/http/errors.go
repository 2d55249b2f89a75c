package http

import (
	"errors"
	"net/http"

	"productivity-calendar/internal/schedule/planner"
	"productivity-calendar/internal/task"
	pkgErrors "productivity-calendar/pkg/errors"
)

var errMissingScope = pkgErrors.NewHTTPError(http.StatusUnauthorized, "unauthorized")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, planner.ErrInvalidArgument),
		errors.Is(err, planner.ErrInvalidState):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
