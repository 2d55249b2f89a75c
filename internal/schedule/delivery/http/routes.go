package http

import (
	"github.com/gin-gonic/gin"

	"productivity-calendar/internal/middleware"
)

// RegisterRoutes maps the schedule endpoints. Every route requires Auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/calendar/schedule-overview", mw.Auth(), h.Overview)
	rg.POST("/tasks/:id/schedule", mw.Auth(), h.ScheduleTask)
}
