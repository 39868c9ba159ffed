// cmd/card-wallet-rest-api/main.go
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

	v1 "github.com/MGTheTrain/card-wallet/internal/api/rest/v1"
	"github.com/MGTheTrain/card-wallet/internal/bootstrap"
	"github.com/MGTheTrain/card-wallet/internal/pkg/config"
	"github.com/MGTheTrain/card-wallet/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine; the environment and config file still apply
	_ = godotenv.Load()

	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
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
	deps, err := bootstrap.Initialize(context.Background(), restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			log.Error("Failed to release resources: ", err)
		}
	}()

	if restConfig.Sweeper.Enabled {
		scheduler, err := deps.Sweeper.Schedule(restConfig.Sweeper.Schedule)
		if err != nil {
			return err
		}
		defer func() { <-scheduler.Stop().Done() }()
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// newRouter builds the gin engine with CORS, request logging and the API routes
func newRouter(deps *bootstrap.Dependencies, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(v1.RequestLogger(log))

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:    []string{"*"},
		ExposeHeaders:   []string{"Content-Length", "Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.CardUpload, deps.CardMetadata, deps.CardImage)

	return r
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *bootstrap.Dependencies, log logger.Logger) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(deps, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

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
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
