package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "bleck-backend/docs"
	"bleck-backend/internal/api/routes"
	"bleck-backend/internal/auth"
	"bleck-backend/internal/cache"
	"bleck-backend/internal/config"
	"bleck-backend/internal/database"
	"bleck-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 15 * time.Second

// @title BLECK Platform API
// @version 1.0
// @description Connects BLECK users to their ad, publisher and analytics platform accounts and manages the access token lifecycle.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New().WithError(err).Fatal("Failed to load configuration")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.New().WithField("component", "server")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	authConfig, err := auth.LoadAuthConfig(cfg.AuthConfigPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load auth configuration")
	}
	if err := auth.ConfigureTokenSecret(authConfig); err != nil {
		log.WithError(err).Fatal("Failed to configure token encryption")
	}

	db, err := database.Initialize(cfg.DSN(), nil)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	cacheConfig := cache.DefaultCacheConfig()
	cacheConfig.RedisURL = cfg.CacheRedisURL
	cacheService, err := cache.New(cacheConfig)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize OAuth state store")
	}
	defer cacheService.Close()
	log.WithField("redis", cfg.CacheRedisURL != "").Info("OAuth state store initialized")

	router, err := routes.SetupRoutes(routes.Dependencies{
		DB:         db,
		AuthConfig: authConfig,
		Cache:      cacheService,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to set up routes")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.Handler(router, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
	log.Info("Server exited")
}
