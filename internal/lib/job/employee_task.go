package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/deppfellow/employees-api/internal/model"
)

// TaskEmployeeChanged is the task type for change notifications.
const TaskEmployeeChanged = "employee:changed"

// Change actions carried in EmployeeChangedPayload.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EmployeeChangedPayload is the JSON payload of an employee:changed task.
type EmployeeChangedPayload struct {
	Action   string         `json:"action"`
	Employee model.Employee `json:"employee"`
}

// NewEmployeeChangedTask builds a task on the default queue, retried up to
// three times and cut off after 30 seconds.
func NewEmployeeChangedTask(action string, employee model.Employee) (*asynq.Task, error) {
	payload, err := json.Marshal(EmployeeChangedPayload{
		Action:   action,
		Employee: employee,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskEmployeeChanged,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NotifyEmployeeChange enqueues a change notification.
func (j *JobService) NotifyEmployeeChange(ctx context.Context, action string, employee model.Employee) error {
	task, err := NewEmployeeChangedTask(action, employee)
	if err != nil {
		return fmt.Errorf("failed to build %s task: %w", TaskEmployeeChanged, err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s task: %w", TaskEmployeeChanged, err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("action", action).
		Int64("employee_id", employee.ID).
		Msg("enqueued employee change notification")
	return nil
}
