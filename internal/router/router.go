// internal/router/router.go
package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/javajoker/store-admin/internal/config"
	"github.com/javajoker/store-admin/internal/handlers"
	"github.com/javajoker/store-admin/internal/middleware"
	"github.com/javajoker/store-admin/internal/services"
	"github.com/javajoker/store-admin/internal/utils"
)

// Dependencies overrides the collaborators built from config. Nil fields get
// the production implementation.
type Dependencies struct {
	Resolver middleware.IdentityResolver
	Gateway  services.PaymentGateway
}

// Initialize wires services, handlers and routes. Background work started
// here stops when ctx is done.
func Initialize(ctx context.Context, db *gorm.DB, cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	if deps.Resolver == nil {
		deps.Resolver = middleware.NewJWTResolver(utils.NewTokenManager(cfg.JWT.SecretKey, cfg.JWT.Issuer))
	}
	if deps.Gateway == nil {
		deps.Gateway = services.NewStripeGateway(cfg.Payment)
	}

	// Initialize services
	storeService := services.NewStoreService(db)
	billboardService := services.NewBillboardService(db, storeService)
	categoryService := services.NewCategoryService(db, storeService)
	sizeService := services.NewSizeService(db, storeService)
	colorService := services.NewColorService(db, storeService)
	productService := services.NewProductService(db, storeService)
	orderService := services.NewOrderService(db, storeService)
	checkoutService := services.NewCheckoutService(db, deps.Gateway, cfg)
	overviewService := services.NewOverviewService(db, storeService)
	storageService, err := services.NewStorageService(cfg, storeService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize handlers
	storeHandler := handlers.NewStoreHandler(storeService)
	billboardHandler := handlers.NewBillboardHandler(billboardService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	sizeHandler := handlers.NewSizeHandler(sizeService)
	colorHandler := handlers.NewColorHandler(colorService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService, checkoutService)
	overviewHandler := handlers.NewOverviewHandler(overviewService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(corsConfig(cfg.CORS)))
	r.Use(middleware.Identity(deps.Resolver))

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		go limiter.Run(ctx, time.Minute)
		r.Use(limiter.MutationsOnly())
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	if cfg.AWS.AccessKeyID == "" {
		r.Static("/uploads", cfg.Storage.LocalDir)
	}

	api := r.Group("/api")
	{
		api.POST("/webhook", orderHandler.Webhook)

		stores := api.Group("/stores")
		{
			stores.POST("", storeHandler.CreateStore)
			stores.GET("", storeHandler.GetStores)
			stores.GET("/:storeId", storeHandler.GetStore)
			stores.PATCH("/:storeId", storeHandler.UpdateStore)
			stores.DELETE("/:storeId", storeHandler.DeleteStore)
		}

		store := api.Group("/:storeId")
		{
			billboards := store.Group("/billboards")
			{
				billboards.POST("", billboardHandler.CreateBillboard)
				billboards.GET("", billboardHandler.GetBillboards)
				billboards.GET("/:billboardId", billboardHandler.GetBillboard)
				billboards.PATCH("/:billboardId", billboardHandler.UpdateBillboard)
				billboards.DELETE("/:billboardId", billboardHandler.DeleteBillboard)
			}

			categories := store.Group("/categories")
			{
				categories.POST("", categoryHandler.CreateCategory)
				categories.GET("", categoryHandler.GetCategories)
				categories.GET("/:categoryId", categoryHandler.GetCategory)
				categories.PATCH("/:categoryId", categoryHandler.UpdateCategory)
				categories.DELETE("/:categoryId", categoryHandler.DeleteCategory)
			}

			sizes := store.Group("/sizes")
			{
				sizes.POST("", sizeHandler.CreateSize)
				sizes.GET("", sizeHandler.GetSizes)
				sizes.GET("/:sizeId", sizeHandler.GetSize)
				sizes.PATCH("/:sizeId", sizeHandler.UpdateSize)
				sizes.DELETE("/:sizeId", sizeHandler.DeleteSize)
			}

			colors := store.Group("/colors")
			{
				colors.POST("", colorHandler.CreateColor)
				colors.GET("", colorHandler.GetColors)
				colors.GET("/:colorId", colorHandler.GetColor)
				colors.PATCH("/:colorId", colorHandler.UpdateColor)
				colors.DELETE("/:colorId", colorHandler.DeleteColor)
			}

			products := store.Group("/products")
			{
				products.POST("", productHandler.CreateProduct)
				products.GET("", productHandler.GetProducts)
				products.GET("/:productId", productHandler.GetProduct)
				products.PATCH("/:productId", productHandler.UpdateProduct)
				products.DELETE("/:productId", productHandler.DeleteProduct)
			}

			store.POST("/checkout", orderHandler.Checkout)

			owner := store.Group("", middleware.AuthRequired())
			{
				owner.GET("/orders", orderHandler.GetOrders)
				owner.GET("/overview", overviewHandler.GetOverview)
				owner.POST("/uploads", uploadHandler.UploadImage)
			}
		}
	}

	return r, nil
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = cfg.AllowedOrigins
	return c
}
