package savedjob

import (
	"github.com/VaibhavBaliyan/hirenest/internal/authz"
	"github.com/VaibhavBaliyan/hirenest/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	saved := r.Group("/saved-jobs")
	saved.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(authz.RoleJobseeker))
	{
		saved.POST("/:id", handler.Save)
		saved.GET("", handler.List)
		saved.DELETE("/:id", handler.Unsave)
	}
}
