package resume

import (
	"github.com/VaibhavBaliyan/hirenest/internal/authz"
	"github.com/VaibhavBaliyan/hirenest/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	resumes := r.Group("/resumes")
	resumes.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(authz.RoleJobseeker))
	{
		resumes.POST("", handler.Upload)
		resumes.GET("", handler.List)
		resumes.PATCH("/:id/activate", handler.Activate)
		resumes.DELETE("/:id", handler.Delete)
	}
}
