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

	"github.com/inkpresshq/inkpress-cms-backend/internal/database"
	"github.com/inkpresshq/inkpress-cms-backend/internal/router"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services/auth"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services/contenttypes"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services/events"
	"github.com/inkpresshq/inkpress-cms-backend/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	// Import Swagger docs
	_ "github.com/inkpresshq/inkpress-cms-backend/docs"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Configure logging
	configureLogging()

	// Initialize Sentry
	utils.InitSentry()

	// Initialize database connection
	db, err := database.InitDB()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize the content event publisher. The server runs without it when
	// RabbitMQ is unavailable; publishing on a nil publisher is a no-op.
	publisher, err := events.NewPublisher()
	if err != nil {
		logrus.Warnf("Failed to initialize RabbitMQ publisher: %v", err)
	} else {
		logrus.Info("RabbitMQ publisher initialized")
		defer publisher.Close()
	}

	// Create the default organization and admin user on first boot
	authService := auth.NewAuthService(db)
	if err := authService.BootstrapAdmin(); err != nil {
		logrus.Warnf("Failed to bootstrap admin user: %v", err)
	} else {
		logrus.Info("Admin user check completed")
	}

	// Initialize token cleanup service
	tokenCleanupService := auth.NewTokenCleanupService(db)
	tokenCleanupService.Start()
	defer tokenCleanupService.Stop()

	// Content type cache shared by the public API and the settings service
	cacheTTL := time.Duration(getEnvAsInt("CONTENT_TYPES_CACHE_TTL_SECONDS", 60)) * time.Second
	typeCache := contenttypes.NewCache(db, cacheTTL)

	// Initialize router
	r := router.SetupRouter(db, publisher, typeCache)

	// Configure HTTP server
	port := getEnv("PORT", "8080")
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", port)
		logrus.Infof("API Health Check: http://localhost:%s/api/v1/health", port)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the server
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited properly")
}

func configureLogging() {
	logLevel := getEnv("LOG_LEVEL", "info")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, fmt.Sprintf("%d", defaultValue))
	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}
	return value
}
