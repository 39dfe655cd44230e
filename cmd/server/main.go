package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/fundwise/sipadvisor/internal/cache"
	"github.com/fundwise/sipadvisor/internal/config"
	"github.com/fundwise/sipadvisor/internal/database"
	"github.com/fundwise/sipadvisor/internal/handlers"
	"github.com/fundwise/sipadvisor/internal/logger"
	"github.com/fundwise/sipadvisor/internal/middleware"
	"github.com/fundwise/sipadvisor/internal/monitoring"
	"github.com/fundwise/sipadvisor/internal/repository"
	"github.com/fundwise/sipadvisor/internal/services/funddata"
	"github.com/fundwise/sipadvisor/internal/services/holdings"
	"github.com/fundwise/sipadvisor/internal/services/market"
	"github.com/fundwise/sipadvisor/internal/services/recommendation"
)

const version = "2.0.0"

var features = []string{"fund_count_info", "sector_selection", "api_integration"}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLog.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.Open(ctx, cfg.GetDatabaseURL())
	if err != nil {
		appLog.Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		appLog.Fatalw("failed to ensure schema", "error", err)
	}

	// Redis is optional; an in-process store keeps a single instance
	// working without it.
	var store cache.Store
	if cfg.Redis.Enabled {
		store = cache.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
		}))
		appLog.Infow("using redis fund data cache", "addr", cfg.RedisAddr())
	} else {
		store = cache.NewMemoryStore()
		appLog.Infow("using in-memory fund data cache")
	}
	dataCache := cache.NewFundDataCache(store, cfg.FundAPI.CacheTTL, cfg.FundAPI.AvailabilityTTL)

	marketClient := market.NewClient(market.Config{
		BaseURL:      cfg.FundAPI.BaseURL,
		ReadTimeout:  cfg.FundAPI.ReadTimeout,
		ProbeTimeout: cfg.FundAPI.ProbeTimeout,
	}, dataCache, appLog)

	engine := recommendation.NewEngine(marketClient, appLog)
	fundDataService := funddata.NewService()
	holdingsService := holdings.NewService()

	userRepo := repository.NewUserRepository(db)
	recRepo := repository.NewRecommendationRepository(db)

	healthChecker := monitoring.NewHealthChecker(db.DB, marketClient, 30*time.Second)
	healthChecker.StartChecks(ctx)

	recHandler := handlers.NewRecommendationHandler(engine, userRepo, recRepo, appLog)
	fundHandler := handlers.NewFundHandler(fundDataService, holdingsService)
	userHandler := handlers.NewUserHandler(userRepo, recRepo, engine)

	router := mux.NewRouter()
	router.Use(middleware.Recovery(appLog))
	router.Use(middleware.SecureHeaders())
	router.Use(middleware.Metrics)
	router.Use(middleware.APIRateLimit(cfg.Rate.RequestsPerSecond, cfg.Rate.Burst))

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/api/health", healthChecker.HTTPHandler(version, features)).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/generate-recommendations", recHandler.Generate).Methods("POST")
	api.HandleFunc("/compare-scenarios", recHandler.CompareScenarios).Methods("POST")
	api.HandleFunc("/sectors", recHandler.Sectors).Methods("GET")
	api.HandleFunc("/fund-performance/{fund}", fundHandler.Performance).Methods("GET")
	api.HandleFunc("/fund-reviews/{fund}", fundHandler.Reviews).Methods("GET")
	api.HandleFunc("/fund-holdings", fundHandler.Holdings).Methods("POST")
	api.HandleFunc("/user/profile", userHandler.CreateProfile).Methods("POST")
	api.HandleFunc("/user/{id}", userHandler.GetProfile).Methods("GET")
	api.HandleFunc("/user/{id}/recommendations", userHandler.GetRecommendations).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLog.Infow("server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Infow("server shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatalw("server forced to shutdown", "error", err)
	}

	appLog.Infow("server stopped")
}
