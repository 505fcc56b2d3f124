// Package repository handles all interactions with the database.
//
// It contains the raw SQL queries and the methods that fetch, persist and
// update rows, keeping SQL away from the service layer.
package repository

import (
	"github.com/deppfellow/employees-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Employee *EmployeeRepository
}

// NewRepositories builds every repository on the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Employee: NewEmployeeRepository(s.DB.Pool),
	}
}
