package http

import (
	"github.com/gin-gonic/gin"

	"productivity-calendar/internal/middleware"
)

// RegisterRoutes maps the import endpoints. Every route requires Auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	cal := rg.Group("/calendar", mw.Auth())
	{
		cal.GET("/integrations", h.ListIntegrations)
		cal.POST("/sync/google", h.SyncGoogle)
		cal.POST("/sync/outlook", h.SyncOutlook)
		cal.POST("/sync/gmail", h.ScanGmail)
	}
}
