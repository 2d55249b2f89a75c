package http

import (
	"github.com/gin-gonic/gin"

	"productivity-calendar/internal/middleware"
)

// RegisterRoutes maps the auth endpoints. Register and login are limited
// per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	a := rg.Group("/auth")
	{
		a.POST("/register", mw.RateLimit(), h.Register)
		a.POST("/login", mw.RateLimit(), h.Login)
		a.GET("/me", mw.Auth(), h.Me)
	}
}
