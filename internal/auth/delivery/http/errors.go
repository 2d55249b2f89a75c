package http

import (
	"errors"
	"net/http"

	"productivity-calendar/internal/auth"
	pkgErrors "productivity-calendar/pkg/errors"
)

var errMissingScope = pkgErrors.NewHTTPError(http.StatusUnauthorized, "unauthorized")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrWeakPassword):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrEmailTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
