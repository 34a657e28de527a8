package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v1 "github.com/nusava/nusava-backend/api/v1"
	"github.com/nusava/nusava-backend/cache"
	"github.com/nusava/nusava-backend/config"
	"github.com/nusava/nusava-backend/database"
	"github.com/nusava/nusava-backend/middleware"
	"github.com/nusava/nusava-backend/prometheus"
	"github.com/nusava/nusava-backend/repositories"
	"github.com/nusava/nusava-backend/scheduler"
	"github.com/nusava/nusava-backend/search"
	"github.com/nusava/nusava-backend/services"
	"github.com/nusava/nusava-backend/utils"
	"github.com/nusava/nusava-backend/viewtracker"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize metrics and database
	prometheus.InitMetrics(config.GetEnv("METRICS_PREFIX", "nusava"))
	database.Initialize()

	// Prepare the upload directory
	uploadDir := config.GetEnv("UPLOAD_DIR", "./uploads")
	if err := utils.EnsureUploadDir(uploadDir); err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	// Optional full-text search index
	var searchClient *search.Client
	if host := os.Getenv("MEILISEARCH_HOST"); host != "" {
		searchClient = search.NewClient(host, os.Getenv("MEILISEARCH_API_KEY"))
		if err := searchClient.InitIndex(); err != nil {
			log.Printf("⚠️ Search index init failed, continuing without search: %v", err)
			searchClient = nil
		} else {
			log.Println("✅ Search index ready")
		}
	}

	// Optional listing cache
	cacheClient := cache.NewClient(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"))
	if cacheClient != nil {
		log.Println("✅ Listing cache enabled")
	}

	// View tracker owns all view-count writes, off the request path
	propertyRepo := repositories.NewPropertyRepository()
	tracker := viewtracker.New(propertyRepo.IncrementViews)
	defer tracker.Stop()

	v1.SetPropertyService(services.NewPropertyService(searchClient, cacheClient, tracker))

	// Daily search reindex
	sched := scheduler.NewScheduler(searchClient)
	if err := sched.Start(config.GetEnv("REINDEX_TIME", "03:00")); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(middleware.MetricsMiddleware())

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded property images
	router.Static("/uploads", uploadDir)

	// API routes
	v1.RegisterRoutes(router.Group("/api"))

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Nusava API starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Shut down on SIGINT/SIGTERM so the view tracker can flush
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
