package router

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/polkiloo/givebox/internal/config"
	"github.com/polkiloo/givebox/internal/server/http/handlers"
	"github.com/polkiloo/givebox/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.GiveboxFacade, logger zerolog.Logger, cfg *config.Config) (*gin.Engine, error) {
	corsMiddleware, err := newCORS(cfg.AllowedOrigins)
	if err != nil {
		return nil, err
	}

	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(corsMiddleware)
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	messageHandler := handlers.NewMessageHandler(facade)
	donationHandler := handlers.NewDonationHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/messages", messageHandler.Submit)
	api.GET("/health", healthHandler.Check)

	authorized := api.Group("")
	authorized.Use(middleware.AuthRequired(facade))
	authorized.POST("/donate", donationHandler.Donate)
	authorized.GET("/donations", donationHandler.List)

	return engine, nil
}

func newCORS(origins []string) (gin.HandlerFunc, error) {
	corsCfg := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	corsCfg.AddAllowHeaders("Authorization", middleware.RequestIDHeader)
	corsCfg.AddExposeHeaders(middleware.RequestIDHeader)

	if err := corsCfg.Validate(); err != nil {
		return nil, fmt.Errorf("cors config: %w", err)
	}
	return cors.New(corsCfg), nil
}
