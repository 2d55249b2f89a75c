package http

import (
	"github.com/gin-gonic/gin"

	"productivity-calendar/pkg/response"
)

// Register godoc
// @Summary     Create an account
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Email and password"
// @Success     201 {object} tokenResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toRegisterInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newTokenResp(output))
}

// Login godoc
// @Summary     Sign in and receive a bearer token
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Email and password"
// @Success     200 {object} tokenResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toLoginInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTokenResp(output))
}

// Me godoc
// @Summary     Current account
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}
