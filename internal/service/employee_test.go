package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/employees-api/internal/errs"
	"github.com/deppfellow/employees-api/internal/lib/job"
	"github.com/deppfellow/employees-api/internal/model"
	"github.com/deppfellow/employees-api/internal/testutil"
)

var jane = model.EmployeeFields{
	Name:     "Jane",
	Birthday: "2000-01-01",
	Salary:   decimal.Zero,
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, MsgEmployeeNotFound, httpErr.Message)
}

func TestEmployeeService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(testutil.NewMemoryEmployeeStore())

	created, err := svc.Create(ctx, jane)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := svc.Update(ctx, created.ID, model.EmployeeFields{
		Name:     "Jane Doe",
		Birthday: "2000-01-02",
		Salary:   decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Employee{*updated}, list)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	requireNotFound(t, err)
}

func TestEmployeeService_MissingEmployee(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(testutil.NewMemoryEmployeeStore())

	_, err := svc.Get(ctx, 42)
	requireNotFound(t, err)

	_, err = svc.Update(ctx, 42, jane)
	requireNotFound(t, err)

	requireNotFound(t, svc.Delete(ctx, 42))
}

func TestEmployeeService_StoreErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection refused")
	store := testutil.NewMemoryEmployeeStore()
	store.Err = storeErr
	svc := NewEmployeeService(store)

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, storeErr)

	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, storeErr)

	_, err = svc.Create(ctx, jane)
	assert.ErrorIs(t, err, storeErr)

	assert.ErrorIs(t, svc.Delete(ctx, 1), storeErr)
}

func TestEmployeeService_ReadThroughCache(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryEmployeeStore()
	cache := testutil.NewMemoryEmployeeCache()
	svc := NewEmployeeService(store, WithCache(cache))

	created, err := svc.Create(ctx, jane)
	require.NoError(t, err)
	assert.NotContains(t, cache.Entries, created.ID, "create must not fill the cache")

	_, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Contains(t, cache.Entries, created.ID)

	calls := store.Calls
	_, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, calls, store.Calls, "a cache hit must not reach the store")

	updated, err := svc.Update(ctx, created.ID, model.EmployeeFields{
		Name:     "Jane Doe",
		Birthday: "2000-01-01",
		Salary:   decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.NotContains(t, cache.Entries, created.ID)

	cache.Expire(created.ID)
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.NotContains(t, cache.Entries, created.ID)
}

// stallingStore holds the first GetByID between the read and its return
// so a write can commit in between.
type stallingStore struct {
	*testutil.MemoryEmployeeStore
	once   sync.Once
	read   chan struct{}
	resume chan struct{}
}

func newStallingStore() *stallingStore {
	return &stallingStore{
		MemoryEmployeeStore: testutil.NewMemoryEmployeeStore(),
		read:                make(chan struct{}),
		resume:              make(chan struct{}),
	}
}

func (s *stallingStore) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	e, err := s.MemoryEmployeeStore.GetByID(ctx, id)
	s.once.Do(func() {
		close(s.read)
		<-s.resume
	})
	return e, err
}

func TestEmployeeService_ReadRacingWriteDoesNotCacheOldRow(t *testing.T) {
	tests := []struct {
		name  string
		write func(svc *EmployeeService, id int64) error
		check func(t *testing.T, svc *EmployeeService, id int64)
	}{
		{
			name: "delete",
			write: func(svc *EmployeeService, id int64) error {
				return svc.Delete(context.Background(), id)
			},
			check: func(t *testing.T, svc *EmployeeService, id int64) {
				_, err := svc.Get(context.Background(), id)
				requireNotFound(t, err)
			},
		},
		{
			name: "update",
			write: func(svc *EmployeeService, id int64) error {
				_, err := svc.Update(context.Background(), id, model.EmployeeFields{
					Name:     "Jane Doe",
					Birthday: "2000-01-01",
					Salary:   decimal.NewFromInt(7),
				})
				return err
			},
			check: func(t *testing.T, svc *EmployeeService, id int64) {
				got, err := svc.Get(context.Background(), id)
				require.NoError(t, err)
				assert.Equal(t, "Jane Doe", got.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := newStallingStore()
			svc := NewEmployeeService(store, WithCache(testutil.NewMemoryEmployeeCache()))

			created, err := svc.Create(ctx, jane)
			require.NoError(t, err)

			done := make(chan error, 1)
			go func() {
				_, err := svc.Get(ctx, created.ID)
				done <- err
			}()

			<-store.read
			require.NoError(t, tt.write(svc, created.ID))
			close(store.resume)
			require.NoError(t, <-done)

			tt.check(t, svc, created.ID)
		})
	}
}

func TestEmployeeService_CacheFailuresAreIgnored(t *testing.T) {
	ctx := context.Background()
	cache := testutil.NewMemoryEmployeeCache()
	cache.Err = errors.New("redis down")
	svc := NewEmployeeService(testutil.NewMemoryEmployeeStore(), WithCache(cache))

	created, err := svc.Create(ctx, jane)
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	require.NoError(t, svc.Delete(ctx, created.ID))
}

func TestEmployeeService_Notifications(t *testing.T) {
	ctx := context.Background()
	notifier := &testutil.RecordingNotifier{}
	svc := NewEmployeeService(testutil.NewMemoryEmployeeStore(), WithNotifier(notifier))

	created, err := svc.Create(ctx, jane)
	require.NoError(t, err)
	_, err = svc.Update(ctx, created.ID, jane)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, _ = svc.Update(ctx, created.ID, jane)

	require.Len(t, notifier.Calls, 3)
	assert.Equal(t, job.ActionCreated, notifier.Calls[0].Action)
	assert.Equal(t, job.ActionUpdated, notifier.Calls[1].Action)
	assert.Equal(t, job.ActionDeleted, notifier.Calls[2].Action)
	assert.Equal(t, created.ID, notifier.Calls[2].Employee.ID)
}

func TestEmployeeService_NotifierFailureDoesNotFailWrite(t *testing.T) {
	notifier := &testutil.RecordingNotifier{Err: errors.New("enqueue failed")}
	svc := NewEmployeeService(testutil.NewMemoryEmployeeStore(), WithNotifier(notifier))

	_, err := svc.Create(context.Background(), jane)
	assert.NoError(t, err)
}
