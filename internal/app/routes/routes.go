package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campusnav/campusnav/internal/app/controllers"
	"github.com/campusnav/campusnav/internal/app/models/dto"
	"github.com/campusnav/campusnav/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	buildingController *controllers.BuildingController,
	scheduleController *controllers.ScheduleController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public routes ---
	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)

	// Building catalog is public reference data; clients may send a token
	// anyway, which is simply ignored here.
	api.GET("/buildings", buildingController.List)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/schedule", scheduleController.Get)
		authenticated.POST("/schedule", scheduleController.Replace)
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
