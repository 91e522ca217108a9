package company

import (
	"github.com/VaibhavBaliyan/hirenest/internal/authz"
	"github.com/VaibhavBaliyan/hirenest/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(authz.RoleEmployer))
	{
		companies.POST("", handler.Register)
		companies.GET("/mine", handler.GetMine)
		companies.PUT("/mine", handler.UpdateMine)
	}
}
