// Package redis persists walletsync state on Redis.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/gabapcia/walletsync/internal/pkg/resilience/retry"
)

type client struct {
	conn   *redis.Client
	prefix string
}

func (c *client) Close() error {
	return c.conn.Close()
}

// Option configures the client built by NewClient.
type Option func(*client)

// WithKeyPrefix namespaces every key written by the client. Defaults to
// "walletsync".
func WithKeyPrefix(prefix string) Option {
	return func(c *client) {
		c.prefix = prefix
	}
}

// NewClient connects to the Redis server at addr. The connection is checked
// with a PING, retried with r.
func NewClient(ctx context.Context, r retry.Retry, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	err := r.Execute(ctx, func() error {
		return conn.Ping(ctx).Err()
	})
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	c := &client{
		conn:   conn,
		prefix: "walletsync",
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
