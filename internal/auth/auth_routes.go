package auth

import (
	"github.com/VaibhavBaliyan/hirenest/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	limiter := middleware.NewIPRateLimiter(rate.Limit(5), 10)

	users := r.Group("/auth")
	{
		users.POST("/register", middleware.RateLimit(limiter), handler.Register)
		users.POST("/login", middleware.RateLimit(limiter), handler.Login)
		users.GET("/me", middleware.AuthMiddleware(), handler.GetMe)
	}
}
