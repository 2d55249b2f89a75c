package http

import (
	"github.com/gin-gonic/gin"

	"productivity-calendar/pkg/response"
)

// Overview godoc
// @Summary     Workload overview
// @Description Busy hours, prep hours due and utilization for the next days_ahead days.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       days_ahead query int false "Horizon in days (default: 7, max: 365)"
// @Success     200 {object} overviewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/schedule-overview [GET]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processOverviewReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Overview(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Overview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newOverviewResp(output))
}

// ScheduleTask godoc
// @Summary     Schedule prep sessions for a task
// @Description Proposes sessions before the deadline that avoid existing events and stores them as prep_session events. With preview=true nothing is stored.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id      path  string true  "Task ID"
// @Param       preview query bool   false "Only propose sessions"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/schedule [POST]
func (h *handler) ScheduleTask(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ScheduleTask(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ScheduleTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newScheduleResp(output))
}
