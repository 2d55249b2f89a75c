package http

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"productivity-calendar/internal/document"
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

// processUploadReq reads the multipart "file" and the optional
// "course_start" form value.
func (h *handler) processUploadReq(c *gin.Context) (model.Scope, document.UploadInput, error) {
	var input document.UploadInput
	sc, err := h.processScope(c)
	if err != nil {
		return sc, input, err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return sc, input, errMissingFile
	}
	if fh.Size > h.maxUploadBytes {
		return sc, input, errFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return sc, input, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, h.maxUploadBytes+1))
	if err != nil {
		return sc, input, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if int64(len(content)) > h.maxUploadBytes {
		return sc, input, errFileTooLarge
	}
	if len(content) == 0 {
		return sc, input, errMissingFile
	}

	courseStart, err := parseCourseStart(c.PostForm("course_start"))
	if err != nil {
		return sc, input, err
	}

	input = document.UploadInput{
		Filename:    fh.Filename,
		Content:     content,
		CourseStart: courseStart,
	}
	return sc, input, nil
}

func (h *handler) processParseTextReq(c *gin.Context) (model.Scope, parseTextReq, error) {
	var req parseTextReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return sc, req, nil
}

func parseCourseStart(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}
	return nil, errCourseStart
}
