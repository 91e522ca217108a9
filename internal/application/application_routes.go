package application

import (
	"github.com/VaibhavBaliyan/hirenest/internal/authz"
	"github.com/VaibhavBaliyan/hirenest/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	jobScoped := r.Group("/jobs/:id")
	jobScoped.Use(middleware.AuthMiddleware())
	{
		jobScoped.POST("/apply",
			middleware.RoleMiddleware(authz.RoleJobseeker),
			middleware.Idempotency(rdb),
			handler.Apply,
		)
		jobScoped.GET("/applicants",
			middleware.RoleMiddleware(authz.RoleEmployer),
			handler.GetJobApplicants,
		)
	}

	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.GET("/my-applications",
			middleware.RoleMiddleware(authz.RoleJobseeker),
			handler.GetMyApplications,
		)
		applications.PATCH("/:id/status",
			middleware.RoleMiddleware(authz.RoleEmployer),
			handler.UpdateStatus,
		)
	}
}
