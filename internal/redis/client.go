// Package redis wraps the go-redis client used for the item pool cache and
// campaign bookkeeping.
package redis

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	DB           int
	Password     string
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxRetries   int
}

// NewClient creates a client for a single Redis instance. endpoint is either
// host:port or a redis:// URL; URL settings win over opts.
func NewClient(endpoint string, opts *Options) (Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	if strings.HasPrefix(endpoint, "redis://") || strings.HasPrefix(endpoint, "rediss://") {
		parsed, err := redis.ParseURL(endpoint)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis URL")
		}
		applyOptions(parsed, opts, false)
		return redis.NewClient(parsed), nil
	}

	redisOpts := &redis.Options{Addr: endpoint}
	applyOptions(redisOpts, opts, true)
	return redis.NewClient(redisOpts), nil
}

func applyOptions(dst *redis.Options, opts *Options, withAuth bool) {
	if withAuth {
		dst.DB = opts.DB
		dst.Password = opts.Password
	}
	if opts.PoolSize > 0 {
		dst.PoolSize = opts.PoolSize
	}
	if opts.DialTimeout > 0 {
		dst.DialTimeout = opts.DialTimeout
	}
	if opts.ReadTimeout > 0 {
		dst.ReadTimeout = opts.ReadTimeout
	}
	if opts.WriteTimeout > 0 {
		dst.WriteTimeout = opts.WriteTimeout
	}
	if opts.MaxRetries != 0 {
		dst.MaxRetries = opts.MaxRetries
	}
}

// Ping checks that the server is reachable.
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}
	return nil
}
