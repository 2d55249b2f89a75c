package http

import (
	"github.com/gin-gonic/gin"

	"productivity-calendar/pkg/response"
)

// UploadSyllabus godoc
// @Summary     Extract deadlines from a document
// @Description Accepts .pdf, .txt or .docx. Every dated item becomes a task.
// @Tags        Documents
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file         formData file   true  "Syllabus document"
// @Param       course_start formData string false "First day of the course (YYYY-MM-DD), resolves 'Week N'"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     413 {object} response.Resp "Request Entity Too Large"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/documents/upload-syllabus [POST]
func (h *handler) UploadSyllabus(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processUploadReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UploadSyllabus(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.UploadSyllabus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// ParseText godoc
// @Summary     Extract deadlines from pasted text
// @Tags        Documents
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body parseTextReq true "Text and its context"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/documents/parse-text [POST]
func (h *handler) ParseText(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processParseTextReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParseText(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExtractResp(output))
}
