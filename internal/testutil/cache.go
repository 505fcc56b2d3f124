package testutil

import (
	"context"
	"sync"

	"github.com/deppfellow/employees-api/internal/model"
)

// MemoryEmployeeCache is an in-memory service.EmployeeCache with the same
// fill and tombstone rules as the Redis cache. Tombstones never expire.
// Setting Err makes every call fail with it.
type MemoryEmployeeCache struct {
	mu         sync.Mutex
	Entries    map[int64]model.Employee
	Tombstones map[int64]bool
	Err        error
}

func NewMemoryEmployeeCache() *MemoryEmployeeCache {
	return &MemoryEmployeeCache{
		Entries:    map[int64]model.Employee{},
		Tombstones: map[int64]bool{},
	}
}

func (c *MemoryEmployeeCache) Get(_ context.Context, id int64) (*model.Employee, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, false, c.Err
	}
	e, ok := c.Entries[id]
	if !ok {
		return nil, false, nil
	}
	return &e, true, nil
}

func (c *MemoryEmployeeCache) Fill(_ context.Context, e *model.Employee) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	if _, ok := c.Entries[e.ID]; ok || c.Tombstones[e.ID] {
		return nil
	}
	c.Entries[e.ID] = *e
	return nil
}

func (c *MemoryEmployeeCache) Invalidate(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	delete(c.Entries, id)
	c.Tombstones[id] = true
	return nil
}

// Expire drops the tombstone for id, as the Redis TTL would.
func (c *MemoryEmployeeCache) Expire(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.Tombstones, id)
}

// Notification is one call recorded by RecordingNotifier.
type Notification struct {
	Action   string
	Employee model.Employee
}

// RecordingNotifier is a service.ChangeNotifier that remembers its calls.
type RecordingNotifier struct {
	mu    sync.Mutex
	Calls []Notification
	Err   error
}

func (n *RecordingNotifier) NotifyEmployeeChange(_ context.Context, action string, employee model.Employee) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Calls = append(n.Calls, Notification{Action: action, Employee: employee})
	return n.Err
}
