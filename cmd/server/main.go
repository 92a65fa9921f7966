// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/minshop/storefront-api/internal/catalog"
	"github.com/minshop/storefront-api/internal/config"
	"github.com/minshop/storefront-api/internal/router"
	"github.com/minshop/storefront-api/internal/stores/snapshot"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	if cfg.Environment == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	// Build the seeded catalog
	products := catalog.Generate(cfg.Catalog.Seed, cfg.Catalog.Size, time.Now())
	repo := catalog.NewRepository(products)
	logrus.WithFields(logrus.Fields{
		"products": repo.Size(),
		"seed":     cfg.Catalog.Seed,
	}).Info("Catalog loaded")

	// Connect the snapshot store; fall back to in-memory when redis is
	// unreachable so the service keeps working without durability.
	var snap snapshot.Store
	redisStore, err := snapshot.NewRedisStore(
		fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		cfg.Redis.Password,
		cfg.Redis.DB,
		time.Duration(cfg.Redis.SnapshotTTL)*time.Hour,
	)
	if err != nil {
		logrus.WithError(err).Warn("Redis unavailable; cart and wishlist snapshots will not survive restarts")
		snap = snapshot.NewMemoryStore()
	} else {
		defer redisStore.Close()
		snap = redisStore
	}

	// Initialize router
	r := router.Initialize(repo, snap, cfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exited")
}
