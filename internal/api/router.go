package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mycart/commerce-api/internal/api/handler"
	"github.com/mycart/commerce-api/internal/api/middleware"
	"github.com/mycart/commerce-api/internal/core/service"
	mongodb "github.com/mycart/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mycart/commerce-api/internal/infrastructure/db/redis"
	"github.com/mycart/commerce-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// pictures may be nil when object storage is not configured; the picture
// upload endpoint then answers with an internal error.
func NewRouter(db *mongo.Database, rdb *redis.Client, pictures service.PictureStore, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	productCache := redisdb.NewProductCache(rdb)

	// One lock table for both services: cart and wishlist writes replace the
	// same user document.
	userLocks := service.NewUserLocks()

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour, log)
	wishlistService := service.NewWishlistService(userRepo, productRepo, userLocks, log)
	cartService := service.NewCartService(userRepo, productRepo, userLocks, log)
	catalogService := service.NewCatalogService(productRepo, productCache, pictures, log)

	authHandler := handler.NewAuthHandler(authService)
	wishlistHandler := handler.NewWishlistHandler(wishlistService)
	cartHandler := handler.NewCartHandler(cartService)
	productHandler := handler.NewProductHandler(catalogService)

	authRequired := middleware.Auth(jwtSecret, userRepo)

	// --- User routes ---
	e.POST("/users/authenticate", authHandler.Authenticate)
	e.POST("/users", authHandler.Register)

	// --- Wishlist ---
	e.GET("/wishlist", wishlistHandler.Get, authRequired)
	e.POST("/wishlist", wishlistHandler.Add, authRequired)
	e.DELETE("/wishlist/:productId", wishlistHandler.Remove, authRequired)

	// --- Cart ---
	e.GET("/cart", cartHandler.Get, authRequired)
	e.POST("/cart", cartHandler.Add, authRequired)
	e.DELETE("/cart/:productId", cartHandler.Remove, authRequired)

	// --- Catalog ---
	e.GET("/products", productHandler.List)
	e.POST("/products", productHandler.Create, authRequired)
	e.POST("/products/:id/picture", productHandler.AttachPicture, authRequired)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
