package main

// @title ViajeyPlanner API
// @version 1.0.0
// @description Travel itinerary planning service. Users build day-by-day trip plans
// @description from a shared place catalog, track packing checklists and trip budgets,
// @description and share finished itineraries publicly.

// @contact.name API Support
// @contact.email support@viajey.com.br

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/cassioviller/ViajeyPlanner/docs/swagger"
	"github.com/cassioviller/ViajeyPlanner/internal/config"
	httpDelivery "github.com/cassioviller/ViajeyPlanner/internal/delivery/http"
	"github.com/cassioviller/ViajeyPlanner/internal/delivery/http/handler"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/logger"
	"github.com/cassioviller/ViajeyPlanner/internal/repository/cache"
	"github.com/cassioviller/ViajeyPlanner/internal/repository/postgres"
	"github.com/cassioviller/ViajeyPlanner/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting ViajeyPlanner")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 6. Initialize repositories
	itineraryRepo := postgres.NewItineraryRepository(db)
	placeRepo := postgres.NewPlaceRepository(db)
	userRepo := postgres.NewUserRepository(db)
	checklistRepo := postgres.NewChecklistRepository(db)
	budgetRepo := postgres.NewBudgetRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	log.Info("Repositories initialized")

	// 7. Initialize use cases
	authUC := usecase.NewAuthUseCase(userRepo, log, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	itineraryUC := usecase.NewItineraryUseCase(itineraryRepo, cacheRepo, log, cfg.Cache.DetailCacheTTL)
	activityUC := usecase.NewActivityUseCase(itineraryRepo, placeRepo, cacheRepo, log)
	placeUC := usecase.NewPlaceUseCase(placeRepo, cacheRepo, log, cfg.Cache.SearchCacheTTL)
	checklistUC := usecase.NewChecklistUseCase(checklistRepo, itineraryRepo, log)
	budgetUC := usecase.NewBudgetUseCase(budgetRepo, itineraryRepo, log)
	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authUC, log)
	itineraryHandler := handler.NewItineraryHandler(itineraryUC, activityUC, log)
	placeHandler := handler.NewPlaceHandler(placeUC, log)
	checklistHandler := handler.NewChecklistHandler(checklistUC, log)
	budgetHandler := handler.NewBudgetHandler(budgetUC, log)
	healthHandler := handler.NewHealthHandler(db, redisClient)
	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authUC,
		authHandler,
		itineraryHandler,
		placeHandler,
		checklistHandler,
		budgetHandler,
		healthHandler,
	)
	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped")
}
