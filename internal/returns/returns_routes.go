package returns

import (
	"github.com/gin-gonic/gin"

	"go-saree-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	rets := r.Group("/returns")
	rets.Use(middleware.AuthMiddleware())
	{
		rets.GET("", handler.List)
		rets.POST("", handler.Create)
	}
}
