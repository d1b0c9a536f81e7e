package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Client wraps go-redis with the connection handling the Redis-backed store
// needs. One shared client serves the whole process so pooling is reused.
type Client struct {
	*redis.Client
}

// NewClient builds a client from a redis:// URL, e.g.
// redis://localhost:6379 or redis://:password@host:6379/0.
func NewClient(redisURL string) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Client{Client: redis.NewClient(opts)}, nil
}

// Ping verifies connectivity. Startup calls this so a misconfigured Redis
// fails fast instead of on the first request.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.Client.Close()
}
