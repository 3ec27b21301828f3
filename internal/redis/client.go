// Package redis wraps the go-redis client so repositories depend on an
// interface that tests can replace with miniredis.
package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/npc-generator/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	// DB selects the logical database
	DB int
}

// NewClient creates a Redis client for a single instance. Redis connects
// lazily; use Ping to check the endpoint.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr: endpoint,
		DB:   opts.DB,
	}

	return redis.NewClient(redisOpts), nil
}

// Ping reports whether the server answers
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis unavailable")
	}
	return nil
}
