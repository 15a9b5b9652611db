package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/redis"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	testCases := []struct {
		name     string
		endpoint string
	}{
		{name: "host and port", endpoint: mr.Addr()},
		{name: "url", endpoint: "redis://" + mr.Addr() + "/0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := redis.NewClient(tc.endpoint, nil)
			require.NoError(t, err)
			defer func() { _ = client.Close() }()

			require.NoError(t, redis.Ping(ctx, client))
			require.NoError(t, client.Set(ctx, "k", "v", 0).Err())
			mr.CheckGet(t, "k", "v")
		})
	}
}

func TestNewClient_Errors(t *testing.T) {
	_, err := redis.NewClient(" ", nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = redis.NewClient("redis://host:notaport/x", nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPing_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	client, err := redis.NewClient(addr, &redis.Options{MaxRetries: -1})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.True(t, errors.IsUnavailable(redis.Ping(context.Background(), client)))
}
