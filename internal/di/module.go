package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/givebox/internal/app"
	"github.com/polkiloo/givebox/internal/config"
	"github.com/polkiloo/givebox/internal/logger"
	"github.com/polkiloo/givebox/internal/pkg/auth"
	"github.com/polkiloo/givebox/internal/server/http/router"
	"github.com/polkiloo/givebox/internal/storage"
	"github.com/polkiloo/givebox/internal/usecase"
)

// Module composes the whole application graph. Extra options are appended
// last so callers can fx.Replace any component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
