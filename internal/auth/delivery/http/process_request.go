package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"productivity-calendar/internal/model"
	pkgErrors "productivity-calendar/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errMissingScope
	}
	return sc, nil
}

func (h *handler) processCredentialsReq(c *gin.Context) (credentialsReq, error) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}
