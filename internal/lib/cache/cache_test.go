package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/employees-api/internal/model"
)

func newTestCache(t *testing.T) (*EmployeeCache, *redis.Client) {
	t.Helper()

	addr := os.Getenv("EMPLOYEES_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("EMPLOYEES_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	return NewEmployeeCache(client, time.Minute), client
}

func testEmployee(id int64, name string) *model.Employee {
	return &model.Employee{
		ID:       id,
		Name:     name,
		Birthday: "2000-01-01",
		Salary:   decimal.RequireFromString("1234.5"),
	}
}

func TestEmployeeCache_RoundTrip(t *testing.T) {
	c, client := newTestCache(t)
	ctx := context.Background()

	employee := testEmployee(424242, "Jane")
	t.Cleanup(func() { client.Del(ctx, model.CacheKey(employee.ID)) })

	require.NoError(t, c.Fill(ctx, employee))

	got, ok, err := c.Get(ctx, employee.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, employee.Name, got.Name)
	assert.True(t, employee.Salary.Equal(got.Salary))

	require.NoError(t, c.Invalidate(ctx, employee.ID))

	_, ok, err = c.Get(ctx, employee.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmployeeCache_FillDoesNotOverwrite(t *testing.T) {
	c, client := newTestCache(t)
	ctx := context.Background()

	id := int64(424243)
	t.Cleanup(func() { client.Del(ctx, model.CacheKey(id)) })

	require.NoError(t, c.Fill(ctx, testEmployee(id, "Jane")))
	require.NoError(t, c.Fill(ctx, testEmployee(id, "Stale")))

	got, ok, err := c.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Jane", got.Name)
}

func TestEmployeeCache_TombstoneRefusesFill(t *testing.T) {
	c, client := newTestCache(t)
	ctx := context.Background()

	id := int64(424244)
	t.Cleanup(func() { client.Del(ctx, model.CacheKey(id)) })

	require.NoError(t, c.Invalidate(ctx, id))
	require.NoError(t, c.Fill(ctx, testEmployee(id, "Deleted")))

	_, ok, err := c.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	ttl, err := client.TTL(ctx, model.CacheKey(id)).Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, ttl, MaxTombstoneTTL)
}
