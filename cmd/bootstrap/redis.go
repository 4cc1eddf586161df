package bootstrap

import (
	"context"
	"log/slog"

	"hotelhub/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
	),
)

// NewRedisClient returns nil when no address is configured; consumers treat
// a nil client as "feature off".
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// Rate limiting degrades to fail-open; the API still serves.
				slog.Warn("redis unreachable at startup", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
