package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"productivity-calendar/internal/model"
	"productivity-calendar/internal/schedule"
	pkgErrors "productivity-calendar/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errMissingScope
	}
	return sc, nil
}

func (h *handler) processOverviewReq(c *gin.Context) (model.Scope, overviewReq, error) {
	req := overviewReq{DaysAhead: schedule.DefaultDaysAhead}
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return sc, req, nil
}

func (h *handler) processScheduleReq(c *gin.Context) (model.Scope, scheduleReq, error) {
	var req scheduleReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.TaskID = c.Param("id")
	return sc, req, nil
}
