package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/scholarmatch-dev/scholarmatch/internal/handlers"
	"github.com/scholarmatch-dev/scholarmatch/internal/middleware"
	"github.com/scholarmatch-dev/scholarmatch/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/signup", handlers.Signup)
		api.POST("/login", handlers.Login)
		api.POST("/logout", middleware.AuthMiddleware(), handlers.Logout)
		api.GET("/me", middleware.AuthMiddleware(), handlers.Me)

		api.GET("/dashboard", middleware.AuthMiddleware(), handlers.GetDashboard)

		api.GET("/settings", middleware.AuthMiddleware(), handlers.GetSettings)
		api.POST("/update-profile", middleware.AuthMiddleware(), handlers.UpdateProfile)
		api.POST("/change-password", middleware.AuthMiddleware(), handlers.ChangePassword)

		notifications := api.Group("/notifications", middleware.AuthMiddleware())
		{
			notifications.GET("", handlers.ListNotifications)
			notifications.GET("/unread-count", handlers.GetUnreadCount)
			notifications.POST("/:notification_id/read", handlers.MarkNotificationRead)
			notifications.POST("/:notification_id/delete", handlers.DeleteNotification)
			notifications.POST("/mark-all-read", handlers.MarkAllNotificationsRead)
			notifications.POST("/delete-selected", handlers.DeleteSelectedNotifications)
			notifications.POST("/delete-all", handlers.DeleteAllNotifications)
		}
	}

	return r
}
