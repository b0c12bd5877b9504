package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rojgarhub/backend/internal/app/controllers"
	"github.com/rojgarhub/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	jobController *controllers.JobController,
	preparationController *controllers.PreparationController,
	siteController *controllers.SiteController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public routes ---
	api.GET("/health", siteController.Health)
	api.GET("/robots", siteController.Robots)
	api.GET("/sitemap", siteController.Sitemap)

	// The aggregation payload varies with privilege but never requires it
	api.GET("/data", authMiddleware.OptionalAdmin(), siteController.Data)

	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Admin-only mutations ---
	admin := api.Group("")
	admin.Use(authMiddleware.RequireAdmin())
	{
		jobs := admin.Group("/jobs")
		{
			jobs.POST("", jobController.Create)
			jobs.PUT("", jobController.Update)
			jobs.DELETE("", jobController.Delete)
		}

		preparation := admin.Group("/preparation")
		{
			preparation.POST("/books", preparationController.CreateBook)
			preparation.PUT("/books", preparationController.UpdateBook)
			preparation.DELETE("/books", preparationController.DeleteBook)
			preparation.POST("/courses", preparationController.CreateCourse)
			preparation.PUT("/courses", preparationController.UpdateCourse)
			preparation.DELETE("/courses", preparationController.DeleteCourse)
		}
	}
}
