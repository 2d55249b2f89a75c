package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"productivity-calendar/internal/model"
	"productivity-calendar/pkg/log"
	"productivity-calendar/pkg/response"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
	requestIDHeader     = "X-Request-ID"
)

// Auth requires a valid bearer token and stores model.Scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorizationHeader)
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		claims, err := m.jwtManager.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: claims.UserID})
		ctx = log.WithUserID(ctx, claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequestID tags every request with an id, reusing X-Request-ID when sent.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
