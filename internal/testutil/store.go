// Package testutil holds in-memory doubles shared by the package tests.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/employees-api/internal/model"
)

// MemoryEmployeeStore is an in-memory service.EmployeeStore. Setting Err
// makes every call fail with it.
type MemoryEmployeeStore struct {
	mu     sync.Mutex
	rows   map[int64]model.Employee
	nextID int64
	Err    error
	Calls  int
}

func NewMemoryEmployeeStore() *MemoryEmployeeStore {
	return &MemoryEmployeeStore{rows: map[int64]model.Employee{}, nextID: 1}
}

func (s *MemoryEmployeeStore) begin() error {
	s.mu.Lock()
	s.Calls++
	return s.Err
}

func (s *MemoryEmployeeStore) List(_ context.Context) ([]model.Employee, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}

	employees := make([]model.Employee, 0, len(s.rows))
	for _, e := range s.rows {
		employees = append(employees, e)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })
	return employees, nil
}

func (s *MemoryEmployeeStore) GetByID(_ context.Context, id int64) (*model.Employee, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}

	e, ok := s.rows[id]
	if !ok {
		return nil, fmt.Errorf("get employee %d: %w", id, pgx.ErrNoRows)
	}
	return &e, nil
}

func (s *MemoryEmployeeStore) Create(_ context.Context, fields model.EmployeeFields) (*model.Employee, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}

	e := model.Employee{ID: s.nextID, Name: fields.Name, Birthday: fields.Birthday, Salary: fields.Salary}
	s.rows[e.ID] = e
	s.nextID++
	return &e, nil
}

func (s *MemoryEmployeeStore) Update(_ context.Context, id int64, fields model.EmployeeFields) (*model.Employee, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}

	if _, ok := s.rows[id]; !ok {
		return nil, fmt.Errorf("update employee %d: %w", id, pgx.ErrNoRows)
	}
	e := model.Employee{ID: id, Name: fields.Name, Birthday: fields.Birthday, Salary: fields.Salary}
	s.rows[id] = e
	return &e, nil
}

func (s *MemoryEmployeeStore) DeleteByID(_ context.Context, id int64) (bool, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return false, err
	}

	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}
