package cache

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/econ-pulse-api/infrastructure/database"
	"github.com/vfg2006/econ-pulse-api/internal/config"
)

// New builds the Store selected by cfg.Driver.
func New(ctx context.Context, cfg config.Cache, clock clockwork.Clock) (Store, error) {
	logrus.WithField("driver", cfg.Driver).Info("cache: initializing store")

	switch cfg.Driver {
	case config.CacheDriverMemory, "":
		return NewMemoryStore(cfg.MaxEntries, clock), nil

	case config.CacheDriverRedis:
		store, err := NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.KeyPrefix)
		if err != nil {
			return nil, errors.Wrap(err, "cache: connecting to redis")
		}
		return store, nil

	case config.CacheDriverPostgres:
		conn, err := database.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, errors.Wrap(err, "cache: connecting to postgres")
		}
		return newSQLStoreOrClose(ctx, conn, clock)

	case config.CacheDriverSQLite:
		conn, err := database.NewSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, errors.Wrap(err, "cache: opening sqlite")
		}
		return newSQLStoreOrClose(ctx, conn, clock)
	}

	return nil, fmt.Errorf("cache: unknown driver %q", cfg.Driver)
}

func newSQLStoreOrClose(ctx context.Context, conn *database.Connection, clock clockwork.Clock) (Store, error) {
	store, err := NewSQLStore(ctx, conn, clock)
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "cache: migrating schema")
	}
	return store, nil
}
