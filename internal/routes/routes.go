package routes

import (
	"net/http"

	"freelance_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the whole API surface under /api.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	h.Auth.RegisterRoutes(api)
	h.Profile.RegisterRoutes(api)
	h.Project.RegisterRoutes(api)
	h.Bid.RegisterRoutes(api)
	h.Notification.RegisterRoutes(api)
	h.Contract.RegisterRoutes(api)
}
