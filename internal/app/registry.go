package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go-saree-api/internal/address"
	"go-saree-api/internal/auth"
	"go-saree-api/internal/cart"
	"go-saree-api/internal/commerce"
	"go-saree-api/internal/messaging/kafka/producer"
	"go-saree-api/internal/middleware"
	"go-saree-api/internal/optimistic"
	"go-saree-api/internal/returns"
	"go-saree-api/internal/storage"
	"go-saree-api/internal/wishlist"
)

type deps struct {
	redis  *redis.Client
	events producer.Publisher
	logger *zap.Logger
}

func registerModules(router *gin.Engine, d deps) {
	api := commerce.NewClient(os.Getenv("COMMERCE_API_URL"), os.Getenv("COMMERCE_API_KEY"))
	notifier := optimistic.NewLogNotifier(d.logger)

	// --- Cart core ---
	cartStorage := storage.NewRedisCartStorage(d.redis)
	cartStore := cart.NewStore(cartStorage, d.logger)
	cartService := cart.NewService(cartStore, cart.NewCouponClient(api), d.events)
	cartSync := cart.NewSyncAdapter(cart.NewRemoteCartClient(api), cartStore, d.logger)

	// --- Remote collaborator services ---
	wishlistService := wishlist.NewService(wishlist.NewClient(api), notifier)
	addressService := address.NewService(address.NewClient(api), notifier)
	returnsService := returns.NewService(returns.NewClient(api), notifier)
	authService := auth.NewService(auth.NewIdentityClient(api), cartSync, d.logger)

	// --- Handlers ---
	cartHandler := cart.NewHandler(cartService)
	wishlistHandler := wishlist.NewHandler(wishlistService)
	addressHandler := address.NewHandler(addressService)
	returnsHandler := returns.NewHandler(returnsService)
	authHandler := auth.NewHandler(authService)

	// --- Routes Registration ---
	router.Use(middleware.RequestIDMiddleware())

	apiGroup := router.Group("/api/v1")
	{
		auth.RegisterRoutes(apiGroup, authHandler)
		cart.RegisterRoutes(apiGroup, cartHandler)
		wishlist.RegisterRoutes(apiGroup, wishlistHandler)
		address.RegisterRoutes(apiGroup, addressHandler)
		returns.RegisterRoutes(apiGroup, returnsHandler)
	}
}
