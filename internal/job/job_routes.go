package job

import (
	"github.com/VaibhavBaliyan/hirenest/internal/authz"
	"github.com/VaibhavBaliyan/hirenest/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.List)

		employer := jobs.Group("")
		employer.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(authz.RoleEmployer))
		{
			employer.POST("", handler.Create)
			employer.GET("/my-jobs", handler.GetMyJobs)
			employer.GET("/stats", handler.GetEmployerStats)
			employer.PUT("/:id", handler.Update)
			employer.PATCH("/:id/close", handler.Close)
			employer.DELETE("/:id", handler.Delete)
		}

		// Registered after the literal routes so /my-jobs and /stats win.
		jobs.GET("/:id", handler.GetByID)
	}
}
