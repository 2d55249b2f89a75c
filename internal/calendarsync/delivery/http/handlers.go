package http

import (
	"github.com/gin-gonic/gin"

	"productivity-calendar/internal/model"
	"productivity-calendar/pkg/response"
)

// SyncGoogle godoc
// @Summary     Import events from Google Calendar
// @Description Upserts the configured Google calendar's events for the next days_ahead days as source=google events.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       days_ahead query int false "Window in days (default: 30, max: 365)"
// @Success     200 {object} syncResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Google Calendar not configured"
// @Router      /api/v1/calendar/sync/google [POST]
func (h *handler) SyncGoogle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SyncGoogle(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncGoogle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSyncResp(output))
}

// SyncOutlook godoc
// @Summary     Import events from Outlook Calendar
// @Description Upserts the configured Outlook calendar's events for the next days_ahead days as source=outlook events.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       days_ahead query int false "Window in days (default: 30, max: 365)"
// @Success     200 {object} syncResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Outlook not configured"
// @Router      /api/v1/calendar/sync/outlook [POST]
func (h *handler) SyncOutlook(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SyncOutlook(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncOutlook: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSyncResp(output))
}

// ScanGmail godoc
// @Summary     Find deadlines in recent Gmail messages
// @Description Runs deadline extraction over messages whose subject mentions a deadline, interview, exam, assignment or due date. With create_tasks=true the deadlines become email tasks and earlier imports are not repeated.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       days_back    query int  false "Messages from the last N days (default: 7, max: 90)"
// @Param       create_tasks query bool false "Create tasks for the deadlines found"
// @Success     200 {object} mailScanResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Gmail not configured"
// @Router      /api/v1/calendar/sync/gmail [POST]
func (h *handler) ScanGmail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processMailScanReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ScanGmail(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ScanGmail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newMailScanResp(output))
}

// ListIntegrations godoc
// @Summary     List calendar integrations
// @Description Returns the providers the caller has synced from, with the time of the last successful run.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} integrationsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/integrations [GET]
func (h *handler) ListIntegrations(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errMissingScope)
		return
	}

	rows, err := h.uc.ListIntegrations(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListIntegrations: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newIntegrationsResp(rows))
}
