package http

import (
	"github.com/gin-gonic/gin"

	"productivity-calendar/internal/middleware"
)

// RegisterRoutes maps the document endpoints. Both call the text generator,
// so they are rate limited after Auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	docs := rg.Group("/documents", mw.Auth(), mw.RateLimit())
	{
		docs.POST("/upload-syllabus", h.UploadSyllabus)
		docs.POST("/parse-text", h.ParseText)
	}
}
