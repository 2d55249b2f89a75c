package http

import (
	"github.com/gin-gonic/gin"

	"productivity-calendar/internal/middleware"
)

// RegisterRoutes maps the event endpoints. Every route requires Auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events", mw.Auth())
	{
		events.POST("", h.Create)
		events.GET("", h.List)
		events.POST("/import-ics", mw.RateLimit(), h.ImportICS)
		events.GET("/export.ics", h.ExportICS)
		events.GET("/:id", h.Detail)
		events.PUT("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}
}
