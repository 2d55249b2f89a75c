package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"productivity-calendar/internal/model"
	pkgErrors "productivity-calendar/pkg/errors"
)

func (h *handler) processSyncReq(c *gin.Context) (model.Scope, syncReq, error) {
	var req syncReq
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return sc, req, errMissingScope
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return sc, req, nil
}

func (h *handler) processMailScanReq(c *gin.Context) (model.Scope, mailScanReq, error) {
	var req mailScanReq
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return sc, req, errMissingScope
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return sc, req, nil
}
