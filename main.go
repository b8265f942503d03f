// File: sushichat/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sushichat/config"
	"sushichat/handlers"
	"sushichat/middleware"
	"sushichat/routes"
	"sushichat/services/chat"
	"sushichat/services/recipe"
	"sushichat/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Load the static intent catalog once; malformed or missing catalog is
	// fatal at startup.
	catalog, err := chat.LoadCatalog(config.AppConfig.IntentsPath)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load intent catalog: %v", err)
	}
	utils.SetIntentCount(len(catalog.Intents))

	// Recipe cache is optional: enabled only when Redis is configured.
	var recipeCache *recipe.RedisRecipeCache
	if config.AppConfig.RedisAddr != "" {
		utils.InitCache()
		recipeCache = recipe.NewRedisRecipeCache(utils.GetCacheClient(), 24*time.Hour)
		utils.StartHealthMonitor(utils.GetCacheClient())
	} else {
		utils.StartHealthMonitor(nil)
	}

	recipeSvc := &recipe.GeminiService{
		Timeout: time.Duration(config.AppConfig.RecipeTimeoutSeconds) * time.Second,
		Cache:   recipeCache,
		Logger:  logger,
	}

	engine := chat.NewDefaultChatEngine(catalog, recipeSvc, config.AppConfig.GeminiAPIKey, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatHandler:    handlers.NewChatHandler(engine),
		IntentsHandler: handlers.NewIntentsHandler(catalog),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
