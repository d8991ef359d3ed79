package routes

import (
	"net/http"

	"jobhub_backend/internal/handlers"
	"jobhub_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes собирает все маршруты приложения под /api/v1
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(api)
		h.OAuth.RegisterRoutes(api)
		h.Job.RegisterRoutes(api)
		h.Profile.RegisterRoutes(api)
	}
}
