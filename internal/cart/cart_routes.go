package cart

import (
	"github.com/gin-gonic/gin"

	"go-saree-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	carts.Use(middleware.OptionalAuthMiddleware())
	{
		carts.GET("", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.DELETE("", handler.Clear)

		carts.POST("/items", handler.AddItem)
		carts.PATCH("/items/:itemId", handler.UpdateQuantity)
		carts.DELETE("/items/:itemId", handler.RemoveItem)

		carts.POST("/coupon", handler.ApplyCoupon)
		carts.DELETE("/coupon", handler.RemoveCoupon)
	}
}
