// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/minshop/storefront-api/internal/catalog"
	"github.com/minshop/storefront-api/internal/config"
	"github.com/minshop/storefront-api/internal/handlers"
	"github.com/minshop/storefront-api/internal/middleware"
	"github.com/minshop/storefront-api/internal/services"
	"github.com/minshop/storefront-api/internal/stores"
	"github.com/minshop/storefront-api/internal/stores/snapshot"
	"github.com/minshop/storefront-api/internal/utils"
)

func Initialize(repo *catalog.Repository, snap snapshot.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	storeManager := stores.NewManager(snap, cfg.Cart.MaxQuantity, logrus.StandardLogger())
	catalogService := services.NewCatalogService(repo, time.Duration(cfg.Catalog.LatencyMs)*time.Millisecond)
	cartService := services.NewCartService(repo, storeManager)
	wishlistService := services.NewWishlistService(repo, storeManager)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)

	// Set session token secret
	utils.SetJWTSecret(cfg.Session.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.Frontend.AllowedOrigins))
	r.Use(middleware.Session(cfg.Session.TTLHours, cfg.Session.TTLHours*3600, cfg.Environment == "production"))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
		}
		v1.GET("/categories", productHandler.GetCategories)

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", middleware.MutationRateLimit(), cartHandler.ClearCart)
			cart.POST("/items", middleware.MutationRateLimit(), cartHandler.AddItem)
			cart.PUT("/items/:productId", middleware.MutationRateLimit(), cartHandler.UpdateItem)
			cart.DELETE("/items/:productId", middleware.MutationRateLimit(), cartHandler.RemoveItem)
		}

		// Wishlist routes
		wishlist := v1.Group("/wishlist")
		{
			wishlist.GET("", wishlistHandler.GetWishlist)
			wishlist.GET("/contains/:productId", wishlistHandler.Contains)
			wishlist.POST("/items", middleware.MutationRateLimit(), wishlistHandler.AddItem)
			wishlist.DELETE("/items/:productId", middleware.MutationRateLimit(), wishlistHandler.RemoveItem)
		}
	}

	return r
}
