package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpLayer "mortgage-engine/http"
	"mortgage-engine/repository"
	"mortgage-engine/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	snapshotRepo := repository.NewSnapshotRepositoryMemory()

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr)
	} else {
		cache = repository.NewMockCache()
	}

	marketDataService := service.NewMarketDataService(cache)
	marketDataHandler := httpLayer.NewMarketDataHandler(marketDataService)

	affordabilityService := service.NewAffordabilityService(snapshotRepo, marketDataService)
	affordabilityHandler := httpLayer.NewAffordabilityHandler(affordabilityService)

	calculateLimiter := httpLayer.NewRateLimiter(httpLayer.CalculateRateLimit, httpLayer.RateLimitWindow)
	defer calculateLimiter.Stop()

	marketDataLimiter := httpLayer.NewRateLimiter(httpLayer.MarketDataRateLimit, httpLayer.RateLimitWindow)
	defer marketDataLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/affordability/calculate",
		httpLayer.RateLimitMiddleware(
			calculateLimiter,
			http.HandlerFunc(affordabilityHandler.Calculate),
		),
	)

	mux.Handle(
		"/market-data",
		httpLayer.RateLimitMiddleware(
			marketDataLimiter,
			http.HandlerFunc(marketDataHandler.GetMarketData),
		),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API corriendo en http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
