package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"telemind_backend/internal/handlers"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMW gin.HandlerFunc,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api")
	{
		appHandlers.UserHandler.RegisterRoutes(api, authMW)
		appHandlers.DoctorHandler.RegisterRoutes(api)
		appHandlers.AppointmentHandler.RegisterRoutes(api, authMW)
	}
}
