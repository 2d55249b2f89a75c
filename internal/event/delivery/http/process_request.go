package http

import (
	"io"
	"net/http"
	"strconv"
	"strings"

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

func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return sc, req, nil
}

func (h *handler) processListReq(c *gin.Context) (model.Scope, listReq, error) {
	var req listReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return sc, req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, updateReq, error) {
	var req updateReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.ID = c.Param("id")
	return sc, req, nil
}

// processImportReq reads the calendar from a multipart "file" field or,
// failing that, from the raw request body.
func (h *handler) processImportReq(c *gin.Context) (model.Scope, []byte, int, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, nil, 0, err
	}

	horizon := 0
	if v := c.Query("horizon_days"); v != "" {
		horizon, err = strconv.Atoi(v)
		if err != nil || horizon < 0 {
			return sc, nil, 0, pkgErrors.NewHTTPError(http.StatusBadRequest, "horizon_days must be a non-negative integer")
		}
	}

	var r io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("file")
		if err != nil {
			return sc, nil, 0, errMissingICS
		}
		f, err := fh.Open()
		if err != nil {
			return sc, nil, 0, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		defer f.Close()
		r = f
	}

	body, err := io.ReadAll(io.LimitReader(r, h.maxICSBytes+1))
	if err != nil {
		return sc, nil, 0, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if int64(len(body)) > h.maxICSBytes {
		return sc, nil, 0, errICSTooLarge
	}
	if len(body) == 0 {
		return sc, nil, 0, errMissingICS
	}
	return sc, body, horizon, nil
}
