// Package redis holds the Redis connection used to coordinate digest delivery
// across replicas.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/biztrack-backend/internal/config"
)

// NewClient creates a client and verifies the connection.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}

	return client, nil
}

// Claimer grants each key to exactly one caller until it expires.
type Claimer struct {
	client goredis.UniversalClient
	prefix string
}

// NewClaimer creates a Claimer. Keys are namespaced with "biztrack:".
func NewClaimer(client goredis.UniversalClient) *Claimer {
	return &Claimer{client: client, prefix: "biztrack:"}
}

// Claim reports whether the caller won key. The key is held for ttl.
func (c *Claimer) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := c.client.SetNX(ctx, c.prefix+key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis: claim %s: %w", key, err)
	}
	return ok, nil
}
