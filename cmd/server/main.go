package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexdoyle/rivals-team-builder/internal/api"
	"github.com/alexdoyle/rivals-team-builder/internal/broadcast"
	"github.com/alexdoyle/rivals-team-builder/internal/config"
	"github.com/alexdoyle/rivals-team-builder/internal/repository/postgres"
	"github.com/alexdoyle/rivals-team-builder/internal/service"
	"github.com/alexdoyle/rivals-team-builder/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Initialize the broadcast layer. Redis fans comments out across
	// processes; when it is absent or unreachable the in-process layer
	// keeps single-instance deployments fully working.
	var layer broadcast.Layer = broadcast.NewMemoryLayer()
	if cfg.RedisURL != "" {
		redisLayer, err := broadcast.NewRedisLayer(cfg.RedisURL)
		if err != nil {
			log.Printf("WARN redis unavailable, using in-process broadcast: %v", err)
		} else {
			layer = redisLayer
		}
	}

	// Initialize WebSocket hub
	hub := websocket.NewHub(layer)

	// Initialize services
	services := service.NewServices(repos, layer, cfg)

	// Initialize router
	router := api.NewRouter(services, hub)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s (%s)", cfg.Port, cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	hub.Stop()
	if err := layer.Close(); err != nil {
		log.Printf("WARN broadcast layer close: %v", err)
	}

	log.Println("Server stopped")
}
