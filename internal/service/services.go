package service

import (
	"github.com/deppfellow/employees-api/internal/lib/cache"
	"github.com/deppfellow/employees-api/internal/lib/job"
	"github.com/deppfellow/employees-api/internal/repository"
	"github.com/deppfellow/employees-api/internal/server"
)

type Services struct {
	Employee *EmployeeService
	Job      *job.JobService
}

// NewServices wires the services onto the repositories. The employee cache
// and change notifications are attached only when the server has Redis and
// a job service.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var opts []EmployeeOption

	if s.Redis != nil {
		opts = append(opts, WithCache(cache.NewEmployeeCache(s.Redis, s.Config.Redis.CacheTTL)))
	}
	if s.Job != nil {
		opts = append(opts, WithNotifier(s.Job))
	}

	return &Services{
		Employee: NewEmployeeService(repos.Employee, opts...),
		Job:      s.Job,
	}, nil
}
