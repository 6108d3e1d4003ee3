package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"storefront-admin/internal/config"
	custommiddleware "storefront-admin/internal/middleware"
	"storefront-admin/internal/repository"
	"storefront-admin/internal/service"
	"storefront-admin/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *sql.DB
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *sql.DB) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize repositories
	storeRepo := repository.NewStoreRepository(db)
	billboardRepo := repository.NewBillboardRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	sizeRepo := repository.NewSizeRepository(db)
	colorRepo := repository.NewColorRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Initialize services
	gate := service.NewGate(storeRepo)
	storeService := service.NewStoreService(storeRepo, gate)
	billboardService := service.NewBillboardService(gate, billboardRepo)
	categoryService := service.NewCategoryService(gate, categoryRepo, billboardRepo)
	sizeService := service.NewSizeService(gate, sizeRepo)
	colorService := service.NewColorService(gate, colorRepo)
	productService := service.NewProductService(gate, productRepo, categoryRepo, sizeRepo, colorRepo)

	// Initialize handlers
	storeHandler := transport.NewStoreHandler(storeService, logger)
	billboardHandler := transport.NewBillboardHandler(billboardService, logger)
	categoryHandler := transport.NewCategoryHandler(categoryService, logger)
	sizeHandler := transport.NewSizeHandler(sizeService, logger)
	colorHandler := transport.NewColorHandler(colorService, logger)
	productHandler := transport.NewProductHandler(productService, logger)

	// Mutation routes run auth first and then, when redis is enabled, the
	// rate limiter, so throttling is keyed by the authenticated identity.
	// Public reads and /health are never throttled.
	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)

	var redisClient *redis.Client
	mutationGuard := authMiddleware
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter := custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: 120,
			Window:            time.Minute,
			KeyPrefix:         "ratelimit",
		}, logger)
		mutationGuard = func(next http.Handler) http.Handler {
			return authMiddleware(limiter(next))
		}
	}

	// Register routes
	storeHandler.RegisterRoutes(router, mutationGuard)
	billboardHandler.RegisterRoutes(router, mutationGuard)
	categoryHandler.RegisterRoutes(router, mutationGuard)
	sizeHandler.RegisterRoutes(router, mutationGuard)
	colorHandler.RegisterRoutes(router, mutationGuard)
	productHandler.RegisterRoutes(router, mutationGuard)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
