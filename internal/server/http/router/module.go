package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/polkiloo/givebox/internal/app"
	"github.com/polkiloo/givebox/internal/config"
	"github.com/polkiloo/givebox/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newEngine)

func newEngine(facade *app.GiveboxFacade, logger zerolog.Logger, cfg *config.Config) (*gin.Engine, error) {
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	return Setup(facade, logger, cfg)
}

var _ handlers.GiveboxFacade = (*app.GiveboxFacade)(nil)
