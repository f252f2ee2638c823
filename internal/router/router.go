// internal/router/router.go
package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawanbishnoiii/shineveda-backend/internal/catalog"
	"github.com/pawanbishnoiii/shineveda-backend/internal/config"
	"github.com/pawanbishnoiii/shineveda-backend/internal/handlers"
	"github.com/pawanbishnoiii/shineveda-backend/internal/middleware"
	"github.com/pawanbishnoiii/shineveda-backend/internal/services"
)

// Setup wires services to handlers and registers every route. The returned
// engine is ready to serve.
func Setup(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Services
	notificationService := services.NewNotificationService(cfg)
	catalogService := services.NewCatalogService(db)
	productService := services.NewProductService(db)
	categoryService := services.NewCategoryService(db)
	inquiryService := services.NewInquiryService(db, notificationService)
	favoriteService := services.NewFavoriteService(db)
	testimonialService := services.NewTestimonialService(db)
	pageService := services.NewPageService(db)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	mediaService := services.NewMediaService(db, storageService)
	seoService := services.NewSeoService(db, cfg)
	analyticsService := services.NewAnalyticsService(db)
	authService := services.NewAuthService(db, cfg)

	// One catalog view registry for the whole storefront, fetching through
	// the catalog service.
	registry := catalog.NewRegistry(catalogService.ListProducts)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(registry, catalogService)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService)
	pageHandler := handlers.NewPageHandler(pageService)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	seoHandler := handlers.NewSeoHandler(seoService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/sitemap.xml", seoHandler.Sitemap)

	v1 := r.Group("/v1")
	{
		// Storefront catalog
		v1.GET("/products", catalogHandler.ListProducts)
		v1.POST("/products/refresh", catalogHandler.RefreshProducts)
		v1.POST("/products/clear", catalogHandler.ClearFilters)
		v1.GET("/products/featured", catalogHandler.ListFeatured)
		v1.GET("/products/:slug", catalogHandler.GetProduct)
		v1.GET("/categories", catalogHandler.ListCategories)
		v1.GET("/catalog/origins", catalogHandler.ListOrigins)
		v1.GET("/catalog/certifications", catalogHandler.ListCertifications)

		// Storefront content
		v1.GET("/testimonials", testimonialHandler.ListActive)
		v1.GET("/pages", pageHandler.ListActive)
		v1.GET("/pages/:slug", pageHandler.GetPage)

		// Inquiries (contact form)
		v1.POST("/inquiries", middleware.InquiryRateLimit(), inquiryHandler.CreateInquiry)

		// Visitor favorites
		v1.GET("/favorites", favoriteHandler.ListFavorites)
		v1.POST("/favorites/:productID", favoriteHandler.AddFavorite)
		v1.DELETE("/favorites/:productID", favoriteHandler.RemoveFavorite)

		// Analytics beacon
		v1.POST("/track", analyticsHandler.Track)
	}

	admin := v1.Group("/admin")
	{
		auth := admin.Group("/auth")
		auth.POST("/login", middleware.AuthRateLimit(), authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.GET("/me", middleware.AuthRequired(), authHandler.Me)

		protected := admin.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/dashboard", analyticsHandler.Dashboard)

			protected.GET("/products", productHandler.ListProducts)
			protected.POST("/products", productHandler.CreateProduct)
			protected.GET("/products/:id", productHandler.GetProduct)
			protected.PUT("/products/:id", productHandler.UpdateProduct)
			protected.DELETE("/products/:id", productHandler.DeleteProduct)

			protected.GET("/categories", categoryHandler.ListCategories)
			protected.POST("/categories", categoryHandler.CreateCategory)
			protected.PUT("/categories/:id", categoryHandler.UpdateCategory)
			protected.DELETE("/categories/:id", categoryHandler.DeleteCategory)

			protected.GET("/inquiries", inquiryHandler.ListInquiries)
			protected.GET("/inquiries/:id", inquiryHandler.GetInquiry)
			protected.PUT("/inquiries/:id", inquiryHandler.UpdateInquiry)
			protected.DELETE("/inquiries/:id", inquiryHandler.DeleteInquiry)

			protected.GET("/testimonials", testimonialHandler.ListTestimonials)
			protected.POST("/testimonials", testimonialHandler.CreateTestimonial)
			protected.PUT("/testimonials/:id", testimonialHandler.UpdateTestimonial)
			protected.DELETE("/testimonials/:id", testimonialHandler.DeleteTestimonial)

			protected.GET("/pages", pageHandler.ListPages)
			protected.POST("/pages", pageHandler.CreatePage)
			protected.PUT("/pages/:id", pageHandler.UpdatePage)
			protected.DELETE("/pages/:id", pageHandler.DeletePage)

			protected.GET("/media", mediaHandler.ListMedia)
			protected.POST("/media", middleware.UploadRateLimit(), mediaHandler.Upload)
			protected.DELETE("/media/:id", mediaHandler.Delete)

			protected.GET("/seo", seoHandler.GetSettings)
			protected.PUT("/seo", middleware.AdminRequired(), seoHandler.UpdateSettings)
		}
	}

	return r, nil
}
