package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func run(ctx context.Context, app *fx.App) {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start application")
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to stop application")
	}
}
