package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/catalog"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/config"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/handlers"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http/middleware"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/auth"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/categories"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/products"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/sections"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/settings"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/testimonials"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/storage"
)

// NewRouter wires the admin API: middleware chain, services over the given
// database handle, and every admin surface behind the session gate.
func NewRouter(l *slog.Logger, db *gorm.DB, cfg config.Config, files storage.Storage) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	authSvc := auth.NewService(db, l, cfg.Session.TTL, cfg.Session.IdleTimeout)

	productRepo := products.NewRepo(db)
	productSvc := products.NewService(productRepo, l)
	categoryRepo := categories.NewRepo(db)
	categorySvc := categories.NewService(categoryRepo, l)
	testimonialRepo := testimonials.NewRepo(db)
	testimonialSvc := testimonials.NewService(testimonialRepo, l)
	sectionRepo := sections.NewRepo(db)
	sectionSvc := sections.NewService(sectionRepo, l)
	settingsSvc := settings.NewService(settings.NewRepo(db), l)

	store := catalog.NewStore()

	productsH := handlers.NewProductsHandler(productSvc, productRepo, categorySvc, store, l)
	imagesH := handlers.NewProductImagesHandler(productRepo, files, l)
	categoriesH := handlers.NewCategoriesHandler(categorySvc, categoryRepo)
	testimonialsH := handlers.NewTestimonialsHandler(testimonialSvc, testimonialRepo)
	sectionsH := handlers.NewSectionsHandler(sectionSvc, sectionRepo)
	settingsH := handlers.NewSettingsHandler(settingsSvc)
	authH := handlers.NewAuthHandler(authSvc, cfg.Session.CookieName, cfg.Session.Secure)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(l))
	r.Use(middleware.ErrorHandler(l))
	r.Use(middleware.Recovery(l))
	r.Use(middleware.Session(middleware.SessionCfg{
		Auth:       authSvc,
		Log:        l,
		CookieName: cfg.Session.CookieName,
		Secure:     cfg.Session.Secure,
	}))

	r.POST("/login", authH.Login)
	r.POST("/logout", authH.Logout)
	r.GET("/session", authH.Session)

	admin := r.Group("/admin/api", middleware.RequireAdmin())
	{
		admin.GET("/products", productsH.List)
		admin.GET("/products/new", productsH.New)
		admin.GET("/products/:id", productsH.Show)
		admin.POST("/products", productsH.Save)
		admin.POST("/products/cancel-edit", productsH.Cancel)
		admin.DELETE("/products/:id", productsH.Delete)
		admin.POST("/products/move", productsH.Move)
		admin.POST("/products/reorder", productsH.Reorder)
		admin.POST("/products/:id/images", imagesH.Upload)
		admin.DELETE("/products/:id/images/:imageID", imagesH.Delete)
		admin.POST("/products/:id/images/:imageID/default", imagesH.SetDefault)

		admin.GET("/categories", categoriesH.List)
		admin.GET("/categories/new", categoriesH.New)
		admin.GET("/categories/:id", categoriesH.Show)
		admin.POST("/categories", categoriesH.Save)
		admin.DELETE("/categories/:id", categoriesH.Delete)
		admin.POST("/categories/reorder", categoriesH.Reorder)

		admin.GET("/testimonials", testimonialsH.List)
		admin.GET("/testimonials/new", testimonialsH.New)
		admin.GET("/testimonials/:id", testimonialsH.Show)
		admin.POST("/testimonials", testimonialsH.Save)
		admin.DELETE("/testimonials/:id", testimonialsH.Delete)
		admin.POST("/testimonials/reorder", testimonialsH.Reorder)

		admin.GET("/features", sectionsH.ListFeatures)
		admin.GET("/features/new", sectionsH.NewFeature)
		admin.GET("/features/:id", sectionsH.ShowFeature)
		admin.POST("/features", sectionsH.SaveFeature)
		admin.DELETE("/features/:id", sectionsH.DeleteFeature)
		admin.POST("/features/reorder", sectionsH.ReorderFeatures)

		admin.GET("/sections", sectionsH.ListSections)
		admin.GET("/sections/new", sectionsH.NewSection)
		admin.GET("/sections/:id", sectionsH.ShowSection)
		admin.POST("/sections", sectionsH.SaveSection)
		admin.DELETE("/sections/:id", sectionsH.DeleteSection)
		admin.POST("/sections/reorder", sectionsH.ReorderSections)

		admin.GET("/settings", settingsH.Show)
		admin.PUT("/settings", settingsH.Save)
	}

	return r
}
