// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue: tasks are enqueued with an
// asynq.Client and executed by the handlers registered on an asynq.Server.
package job

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/employees-api/internal/config"
	"github.com/deppfellow/employees-api/internal/lib/email"
)

// EmployeeChangeSender delivers a change notification.
type EmployeeChangeSender interface {
	SendEmployeeChanged(to string, data email.EmployeeChangedData) error
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	logger *zerolog.Logger

	sender            EmployeeChangeSender
	notificationEmail string
}

// NewJobService creates a JobService on the configured Redis address. The
// worker sends change notifications to integration.notification_email.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   &asynqLogger{log: logger},
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		Client:            asynq.NewClient(redisOpt),
		server:            server,
		logger:            logger,
		sender:            email.NewClient(cfg, logger),
		notificationEmail: cfg.Integration.NotificationEmail,
	}
}

func (j *JobService) mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskEmployeeChanged, j.handleEmployeeChangedTask)
	return mux
}

// Start registers the task handlers and starts the workers in the
// background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")
	return j.server.Start(j.mux())
}

// Stop waits for in-flight tasks and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
