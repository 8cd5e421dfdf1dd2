package ingest

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// TopStoriesScope is the cursor scope for the global feed; category feeds
// use CategoryScope.
const TopStoriesScope = "top_stories"

func CategoryScope(categoryID int64) string {
	return fmt.Sprintf("category:%d", categoryID)
}

// CursorStore holds one resume token per feed scope. Get returns an empty
// string for scopes never written. Losing a cursor is safe: the worst case
// is re-fetching from the start, which reconciliation tolerates.
type CursorStore interface {
	Get(ctx context.Context, scope string) (string, error)
	Set(ctx context.Context, scope, value string) error
}

const cursorKeyPrefix = "newsapp:cursor:"

// RedisCursors persists cursors in Redis without TTL so they survive
// restarts.
type RedisCursors struct {
	client *redis.Client
}

func NewRedisCursors(client *redis.Client) *RedisCursors {
	return &RedisCursors{client: client}
}

func (c *RedisCursors) Get(ctx context.Context, scope string) (string, error) {
	value, err := c.client.Get(ctx, cursorKeyPrefix+scope).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get cursor %s: %w", scope, err)
	}
	return value, nil
}

func (c *RedisCursors) Set(ctx context.Context, scope, value string) error {
	if err := c.client.Set(ctx, cursorKeyPrefix+scope, value, 0).Err(); err != nil {
		return fmt.Errorf("set cursor %s: %w", scope, err)
	}
	return nil
}

// MemoryCursors is the in-process CursorStore used in tests.
type MemoryCursors struct {
	mu      sync.Mutex
	cursors map[string]string
}

func NewMemoryCursors() *MemoryCursors {
	return &MemoryCursors{cursors: make(map[string]string)}
}

func (c *MemoryCursors) Get(_ context.Context, scope string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursors[scope], nil
}

func (c *MemoryCursors) Set(_ context.Context, scope, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursors[scope] = value
	return nil
}
