package http

import (
	"github.com/gin-gonic/gin"

	"storefront-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The query
// route is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	assistant := rg.Group("/assistant")
	{
		assistant.POST("/query", mw.RateLimit(), h.Query)
	}
}
