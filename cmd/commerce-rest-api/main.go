// cmd/commerce-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openmerch/commerce-api/internal/api/rest/middleware"
	v1 "github.com/openmerch/commerce-api/internal/api/rest/v1"
	"github.com/openmerch/commerce-api/internal/app"
	"github.com/openmerch/commerce-api/internal/domain/cart"
	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/infrastructure/cache"
	"github.com/openmerch/commerce-api/internal/infrastructure/persistence"
	"github.com/openmerch/commerce-api/internal/pkg/config"
	"github.com/openmerch/commerce-api/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db          *gorm.DB
	redisClient *redis.Client
	services    v1.Services
	rateCounter middleware.Counter
}

// initializeDependencies sets up all application components. The database is
// mandatory and migrations must succeed before the server starts; Redis is
// optional and only disables the cart, the catalog cache and the rate limiter
// when unreachable.
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.AutoMigrateAll(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Warn(fmt.Sprintf("Redis unavailable, cart and catalog cache disabled: %v", err))
		redisClient = nil
	}

	// Initialize services
	services, err := initializeApplicationServices(db, redisClient, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	deps := &appDependencies{
		db:          db,
		redisClient: redisClient,
		services:    services,
	}

	if redisClient != nil {
		counter, err := cache.NewRedisCounter(redisClient)
		if err != nil {
			return nil, fmt.Errorf("failed to create rate counter: %w", err)
		}
		deps.rateCounter = counter
	}

	return deps, nil
}

// initializeApplicationServices wires repositories into services
func initializeApplicationServices(db *gorm.DB, redisClient *redis.Client, log logger.Logger) (v1.Services, error) {
	var services v1.Services

	categoryRepo, err := persistence.NewGormCategoryRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create category repository: %w", err)
	}

	productRepo, err := persistence.NewGormProductRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create product repository: %w", err)
	}

	clientRepo, err := persistence.NewGormClientRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create client repository: %w", err)
	}

	addressRepo, err := persistence.NewGormAddressRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create address repository: %w", err)
	}

	orderRepo, err := persistence.NewGormOrderRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create order repository: %w", err)
	}

	orderDetailRepo, err := persistence.NewGormOrderDetailRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create order detail repository: %w", err)
	}

	billRepo, err := persistence.NewGormBillRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create bill repository: %w", err)
	}

	reviewRepo, err := persistence.NewGormReviewRepository(db, log)
	if err != nil {
		return services, fmt.Errorf("failed to create review repository: %w", err)
	}

	var catalogCache catalog.Cache
	if redisClient != nil {
		catalogCache, err = cache.NewRedisCatalogCache(redisClient, cache.DefaultCatalogTTL, log)
		if err != nil {
			return services, fmt.Errorf("failed to create catalog cache: %w", err)
		}
	}

	services.CategoryService, err = app.NewCategoryService(categoryRepo, log)
	if err != nil {
		return services, fmt.Errorf("failed to create category service: %w", err)
	}

	services.ProductService, err = app.NewProductService(productRepo, orderDetailRepo, catalogCache, log)
	if err != nil {
		return services, fmt.Errorf("failed to create product service: %w", err)
	}

	services.ClientService, err = app.NewClientService(clientRepo, log)
	if err != nil {
		return services, fmt.Errorf("failed to create client service: %w", err)
	}

	services.AddressService, err = app.NewAddressService(addressRepo, clientRepo, log)
	if err != nil {
		return services, fmt.Errorf("failed to create address service: %w", err)
	}

	services.OrderService, err = app.NewOrderService(orderRepo, clientRepo, log)
	if err != nil {
		return services, fmt.Errorf("failed to create order service: %w", err)
	}

	services.OrderDetailService, err = app.NewOrderDetailService(orderDetailRepo, orderRepo, productRepo, log)
	if err != nil {
		return services, fmt.Errorf("failed to create order detail service: %w", err)
	}

	services.BillService, err = app.NewBillService(billRepo, clientRepo, log)
	if err != nil {
		return services, fmt.Errorf("failed to create bill service: %w", err)
	}

	services.ReviewService, err = app.NewReviewService(reviewRepo, productRepo, log)
	if err != nil {
		return services, fmt.Errorf("failed to create review service: %w", err)
	}

	if redisClient != nil {
		var store cart.Store
		store, err = cache.NewRedisCartStore(redisClient, cache.DefaultCartTTL, log)
		if err != nil {
			return services, fmt.Errorf("failed to create cart store: %w", err)
		}

		services.CartService, err = app.NewCartService(store, productRepo, log)
		if err != nil {
			return services, fmt.Errorf("failed to create cart service: %w", err)
		}
	}

	return services, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS. Allowed origins come from configuration; credentials
	// stay off unless a deployment opts in.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", middleware.RequestIDHeader},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(deps.rateCounter, cfg.RateLimit, log))

	// Setup API routes
	v1.SetupRoutes(r, deps.services, deps.db, deps.redisClient)

	// Create HTTP server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
