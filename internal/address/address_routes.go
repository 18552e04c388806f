package address

import (
	"github.com/gin-gonic/gin"

	"go-saree-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	addresses := r.Group("/addresses")
	addresses.Use(middleware.AuthMiddleware())
	{
		addresses.GET("", handler.List)
		addresses.POST("", handler.Create)
		addresses.PUT("/:id", handler.Update)
		addresses.DELETE("/:id", handler.Delete)
		addresses.POST("/:id/default", handler.SetDefault)
	}
}
