package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps the go-redis connection backing the report cache. The cache is
// an optional collaborator: callers treat a nil Client as "no cache".
type Client struct {
	client *redis.Client
}

// connectTimeout bounds the startup ping. Report caching is best-effort, so a
// slow broker should not stall service boot.
const connectTimeout = 5 * time.Second

func NewRedisClient(host, port, password string, db int) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{client: client}, nil
}

// GetClient exposes the underlying connection for cache reads and writes.
func (c *Client) GetClient() *redis.Client {
	return c.client
}

// Ping reports whether the cache backend is still reachable, for /health.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.client.Close()
}
