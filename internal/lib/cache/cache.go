// Package cache keeps recently read employees in Redis.
package cache

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/deppfellow/employees-api/internal/model"
)

// MaxTombstoneTTL bounds how long an invalidated key refuses fills.
const MaxTombstoneTTL = 10 * time.Second

// tombstone marks a key whose row was just written. It is never valid JSON.
var tombstone = []byte("-")

// EmployeeCache is a read-through cache keyed by model.CacheKey.
//
// Reads fill with SET NX and writes replace the entry with a short-lived
// tombstone, so a fill computed from a row read before a write is refused
// until the tombstone expires.
type EmployeeCache struct {
	client       *redis.Client
	ttl          time.Duration
	tombstoneTTL time.Duration
}

// NewEmployeeCache caches entries for ttl. A zero ttl keeps entries until
// they are invalidated.
func NewEmployeeCache(client *redis.Client, ttl time.Duration) *EmployeeCache {
	tombstoneTTL := MaxTombstoneTTL
	if ttl > 0 {
		tombstoneTTL = min(ttl, MaxTombstoneTTL)
	}
	return &EmployeeCache{
		client:       client,
		ttl:          ttl,
		tombstoneTTL: tombstoneTTL,
	}
}

// Get returns the cached employee. A miss or a tombstone is (nil, false, nil).
func (c *EmployeeCache) Get(ctx context.Context, id int64) (*model.Employee, bool, error) {
	raw, err := c.client.Get(ctx, model.CacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if bytes.Equal(raw, tombstone) {
		return nil, false, nil
	}

	var e model.Employee
	if err := e.UnmarshalBinary(raw); err != nil {
		return nil, false, err
	}
	return &e, true, nil
}

// Fill stores e only if its key is empty.
func (c *EmployeeCache) Fill(ctx context.Context, e *model.Employee) error {
	return c.client.SetNX(ctx, model.CacheKey(e.ID), e, c.ttl).Err()
}

// Invalidate replaces the entry for id with a tombstone.
func (c *EmployeeCache) Invalidate(ctx context.Context, id int64) error {
	return c.client.Set(ctx, model.CacheKey(id), tombstone, c.tombstoneTTL).Err()
}
