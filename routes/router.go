package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/navacharity/charity-go/handlers"
	"github.com/navacharity/charity-go/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.POST("/benefactors", handlers.RegisterBenefactor)
		auth.POST("/charities", handlers.RegisterCharity)

		tasks := auth.Group("/tasks")
		{
			tasks.GET("", handlers.GetTasks)
			tasks.POST("", middleware.RequireCharityOwner(), handlers.CreateTask)
			tasks.GET("/:id/request", middleware.RequireBenefactor(), handlers.RequestTask)
			tasks.POST("/:id/response", middleware.RequireCharityOwner(), handlers.RespondToTask)
			tasks.POST("/:id/done", middleware.RequireCharityOwner(), handlers.CompleteTask)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", handlers.GetAuditLogs)
		}
	}
}
