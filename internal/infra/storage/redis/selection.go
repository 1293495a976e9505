package redis

import (
	"context"
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

// selectionKey returns the key holding the last selected account id.
//
// Format: "{prefix}:selection:last"
func selectionKey(prefix string) string {
	return fmt.Sprintf("%s:selection:last", prefix)
}

// LastSelected returns the persisted account id, "" when none was saved.
func (c *client) LastSelected(ctx context.Context) (string, error) {
	id, err := c.conn.Get(ctx, selectionKey(c.prefix)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}

	return id, err
}

// SaveSelected persists accountID as the last selected account. The key has
// no expiration.
func (c *client) SaveSelected(ctx context.Context, accountID string) error {
	return c.conn.Set(ctx, selectionKey(c.prefix), accountID, 0).Err()
}
