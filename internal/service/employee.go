package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/deppfellow/employees-api/internal/errs"
	"github.com/deppfellow/employees-api/internal/lib/job"
	"github.com/deppfellow/employees-api/internal/model"
)

// MsgEmployeeNotFound is the 404 message for an unknown employee id.
const MsgEmployeeNotFound = "Employee not found"

// EmployeeStore is the data-access contract for employees. GetByID and
// Update report a missing row with an error wrapping pgx.ErrNoRows.
type EmployeeStore interface {
	List(ctx context.Context) ([]model.Employee, error)
	GetByID(ctx context.Context, id int64) (*model.Employee, error)
	Create(ctx context.Context, fields model.EmployeeFields) (*model.Employee, error)
	Update(ctx context.Context, id int64, fields model.EmployeeFields) (*model.Employee, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// EmployeeCache caches single employees by id. Fill must not overwrite an
// existing entry, and Invalidate must block fills for a while afterwards so
// a read that raced a write cannot cache the old row.
type EmployeeCache interface {
	Get(ctx context.Context, id int64) (*model.Employee, bool, error)
	Fill(ctx context.Context, e *model.Employee) error
	Invalidate(ctx context.Context, id int64) error
}

// ChangeNotifier is told about every successful write.
type ChangeNotifier interface {
	NotifyEmployeeChange(ctx context.Context, action string, employee model.Employee) error
}

type EmployeeOption func(*EmployeeService)

func WithCache(c EmployeeCache) EmployeeOption {
	return func(s *EmployeeService) { s.cache = c }
}

func WithNotifier(n ChangeNotifier) EmployeeOption {
	return func(s *EmployeeService) { s.notifier = n }
}

// EmployeeService implements the employee operations. The store is
// authoritative; cache and notifier failures are logged and never fail a
// request.
type EmployeeService struct {
	store    EmployeeStore
	cache    EmployeeCache
	notifier ChangeNotifier
}

func NewEmployeeService(store EmployeeStore, opts ...EmployeeOption) *EmployeeService {
	s := &EmployeeService{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	return s.store.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*model.Employee, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, id)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Int64("employee_id", id).Msg("employee cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	employee, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	s.fill(ctx, employee)
	return employee, nil
}

func (s *EmployeeService) Create(ctx context.Context, fields model.EmployeeFields) (*model.Employee, error) {
	employee, err := s.store.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, job.ActionCreated, *employee)
	return employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, id int64, fields model.EmployeeFields) (*model.Employee, error) {
	employee, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return nil, notFound(err)
	}

	s.invalidate(ctx, id)
	s.notify(ctx, job.ActionUpdated, *employee)
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewNotFoundError(MsgEmployeeNotFound, nil)
	}

	s.invalidate(ctx, id)
	s.notify(ctx, job.ActionDeleted, model.Employee{ID: id})
	return nil
}

// notFound maps a missing row onto the employee 404 and returns any other
// error unchanged.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError(MsgEmployeeNotFound, nil)
	}
	return err
}

func (s *EmployeeService) fill(ctx context.Context, employee *model.Employee) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Fill(ctx, employee); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("employee_id", employee.ID).Msg("employee cache write failed")
	}
}

// invalidate runs after the store write has committed.
func (s *EmployeeService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("employee_id", id).Msg("employee cache eviction failed")
	}
}

func (s *EmployeeService) notify(ctx context.Context, action string, employee model.Employee) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyEmployeeChange(ctx, action, employee); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("action", action).
			Int64("employee_id", employee.ID).
			Msg("failed to enqueue employee change notification")
	}
}
