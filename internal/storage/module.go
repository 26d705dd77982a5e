package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/polkiloo/givebox/internal/config"
	"github.com/polkiloo/givebox/internal/domain/repository"
	"github.com/polkiloo/givebox/internal/storage/mysql"
	"github.com/polkiloo/givebox/internal/storage/postgres"
)

// Module wires the configured storage backend and its repository adapters.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Provide(
		func(s repository.Store) repository.UserRepository { return s.Users() },
		func(s repository.Store) repository.MessageRepository { return s.Messages() },
		func(s repository.Store) repository.DonationRepository { return s.Donations() },
	),
	fx.Invoke(registerLifecycle),
)

type opener func(ctx context.Context, dsn string, logger zerolog.Logger) (repository.Store, error)

var openers = map[string]opener{
	config.StorageDriverPostgres: func(ctx context.Context, dsn string, logger zerolog.Logger) (repository.Store, error) {
		s, err := postgres.New(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	},
	config.StorageDriverMySQL: func(ctx context.Context, dsn string, logger zerolog.Logger) (repository.Store, error) {
		s, err := mysql.New(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	},
}

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger zerolog.Logger
}

func newStore(p storeParams) (repository.Store, error) {
	open, ok := openers[p.Config.StorageDriver]
	if !ok {
		return nil, fmt.Errorf("unsupported storage driver %q", p.Config.StorageDriver)
	}
	logger := p.Logger.With().Str("component", "storage").Str("driver", p.Config.StorageDriver).Logger()
	return open(p.Ctx, p.Config.DatabaseURI, logger)
}

func registerLifecycle(lc fx.Lifecycle, store repository.Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			store.Close()
			return nil
		},
	})
}
