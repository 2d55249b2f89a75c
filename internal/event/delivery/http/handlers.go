package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"productivity-calendar/internal/event"
	"productivity-calendar/pkg/response"
)

// Create godoc
// @Summary     Create an event
// @Tags        Events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Event data"
// @Success     201  {object} itemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, itemResp{Event: NewEventResp(output.Event)})
}

// List godoc
// @Summary     List events
// @Description Events whose start lies in [from, to], ordered by start.
// @Tags        Events
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "RFC3339 lower bound"
// @Param       to   query string false "RFC3339 upper bound"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get event detail
// @Tags        Events
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Event ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, itemResp{Event: NewEventResp(output.Event)})
}

// Update godoc
// @Summary     Update an event
// @Tags        Events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Event ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, itemResp{Event: NewEventResp(output.Event)})
}

// Delete godoc
// @Summary     Delete an event
// @Tags        Events
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ImportICS godoc
// @Summary     Import an iCalendar file
// @Description Accepts a multipart "file" or a raw text/calendar body. Recurring events are expanded up to horizon_days ahead.
// @Tags        Events
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file         formData file false "ICS file"
// @Param       horizon_days query    int  false "Expansion horizon (default: 90)"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "Payload Too Large"
// @Router      /api/v1/events/import-ics [POST]
func (h *handler) ImportICS(c *gin.Context) {
	ctx := c.Request.Context()

	sc, body, horizon, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ImportICS(ctx, sc, event.ImportICSInput{Body: body, HorizonDays: horizon})
	if err != nil {
		h.l.Errorf(ctx, "uc.ImportICS: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newImportResp(output))
}

// ExportICS godoc
// @Summary     Export events as iCalendar
// @Tags        Events
// @Produce     text/calendar
// @Security    BearerAuth
// @Param       from query string false "RFC3339 lower bound"
// @Param       to   query string false "RFC3339 upper bound"
// @Success     200 {string} string "VCALENDAR body"
// @Router      /api/v1/events/export.ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExportICS(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(output.Body))
}
