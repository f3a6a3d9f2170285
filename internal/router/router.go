// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tiendita/backend/internal/assets"
	"github.com/tiendita/backend/internal/config"
	"github.com/tiendita/backend/internal/handlers"
	"github.com/tiendita/backend/internal/middleware"
	"github.com/tiendita/backend/internal/models"
	"github.com/tiendita/backend/internal/realtime"
	"github.com/tiendita/backend/internal/services"
	"github.com/tiendita/backend/internal/store"
)

func Initialize(cfg *config.Config) (*gin.Engine, error) {
	// Collections
	products := store.NewCollection[models.Product](cfg.Storage.DataDir, "products")
	carts := store.NewCollection[models.Cart](cfg.Storage.DataDir, "carts")
	orders := store.NewCollection[models.Order](cfg.Storage.DataDir, "orders")
	skus := store.NewCollection[models.Sku](cfg.Storage.DataDir, "skus")

	if err := products.EnsureExists(); err != nil {
		return nil, err
	}
	if err := carts.EnsureExists(); err != nil {
		return nil, err
	}
	if err := orders.EnsureExists(); err != nil {
		return nil, err
	}
	if err := skus.EnsureExists(); err != nil {
		return nil, err
	}

	assetStore, err := assets.NewStore(cfg)
	if err != nil {
		return nil, err
	}

	// Initialize services
	hub := realtime.NewHub()
	productService := services.NewProductService(products)
	cartService := services.NewCartService(carts, productService)
	orderService := services.NewOrderService(orders)
	skuService := services.NewSkuService(skus, assetStore)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService, hub)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	skuHandler := handlers.NewSkuHandler(skuService, assetStore, cfg.Upload.MaxSizeMB)
	eventsHandler := handlers.NewEventsHandler(hub)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		productsGroup := api.Group("/products")
		{
			productsGroup.GET("", productHandler.GetProducts)
			productsGroup.GET("/:pid", productHandler.GetProduct)
			productsGroup.POST("", productHandler.CreateProduct)
			productsGroup.PUT("/:pid", productHandler.UpdateProduct)
			productsGroup.DELETE("/:pid", productHandler.DeleteProduct)
		}

		cartsGroup := api.Group("/carts")
		{
			cartsGroup.POST("", cartHandler.CreateCart)
			cartsGroup.GET("/:cid", cartHandler.GetCart)
			cartsGroup.POST("/:cid/product/:pid", cartHandler.AddProduct)
		}

		ordersGroup := api.Group("/orders")
		{
			ordersGroup.GET("", orderHandler.GetOrders)
			ordersGroup.GET("/:id", orderHandler.GetOrder)
			ordersGroup.POST("", orderHandler.CreateOrder)
			ordersGroup.POST("/:id/sku/:skuId", orderHandler.AddSku)
			ordersGroup.DELETE("/:id", orderHandler.DeleteOrder)
		}

		skusGroup := api.Group("/skus")
		{
			skusGroup.GET("", skuHandler.GetSkus)
			skusGroup.GET("/:id", skuHandler.GetSku)
			skusGroup.POST("", middleware.UploadRateLimit(), skuHandler.CreateSku)
			skusGroup.PUT("/:id", middleware.UploadRateLimit(), skuHandler.UpdateSku)
			skusGroup.DELETE("/:id", skuHandler.DeleteSku)
		}

		api.GET("/events", eventsHandler.Stream)
	}

	// Static file serving (for development, local asset store only)
	if cfg.Environment == "development" && cfg.AWS.AccessKeyID == "" {
		r.Static("/uploads", cfg.Storage.UploadDir)
	}

	return r, nil
}
