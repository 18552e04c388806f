package wishlist

import (
	"github.com/gin-gonic/gin"

	"go-saree-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	wl := r.Group("/wishlist")
	wl.Use(middleware.AuthMiddleware())
	{
		wl.GET("", handler.List)
		wl.DELETE("/:productId", handler.Remove)
		wl.DELETE("", handler.Clear)
	}
}
