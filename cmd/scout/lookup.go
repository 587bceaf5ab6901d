package main

import (
	"context"
	"log/slog"
	"net/http"

	"scout/config"
	"scout/internal/domain/lifecycle"
	"scout/internal/domain/service"
	"scout/internal/infra/cache"
	"scout/internal/infra/lookup"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type lookupParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// newLookupProvider creates the marketplace client, fronted by the Redis
// cache when one is enabled
func newLookupProvider(params lookupParams) (service.LookupProvider, error) {
	client, err := lookup.NewClient(params.Config.Lookup, &http.Client{}, params.Logger)
	if err != nil {
		return nil, err
	}

	cacheCfg := params.Config.Cache
	if cacheCfg == nil || !cacheCfg.Enabled {
		return client, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cacheCfg.Addr,
		Password: cacheCfg.Password,
		DB:       cacheCfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := rdb.Ping(ctx).Err(); err != nil {
				// The cache is optional; lookups fall through to the client.
				params.Logger.Warn("Redis lookup cache unreachable", slog.String("addr", cacheCfg.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(rdb.Close())
		},
	})

	params.Logger.Info("Lookup cache enabled", slog.String("addr", cacheCfg.Addr), slog.Duration("ttl", cacheCfg.TTL))

	return cache.NewCachedLookupProvider(client, rdb, cacheCfg.TTL, params.Logger), nil
}
