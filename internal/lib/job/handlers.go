package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/deppfellow/employees-api/internal/lib/email"
)

// handleEmployeeChangedTask emails the notification address about one change.
// A malformed payload is skipped, since retrying cannot fix it.
func (j *JobService) handleEmployeeChangedTask(ctx context.Context, t *asynq.Task) error {
	var p EmployeeChangedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal employee changed payload: %v: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskEmployeeChanged).
		Str("action", p.Action).
		Int64("employee_id", p.Employee.ID).
		Logger()

	log.Info().Msg("processing employee change notification")

	err := j.sender.SendEmployeeChanged(j.notificationEmail, email.EmployeeChangedData{
		Action:   p.Action,
		Employee: p.Employee,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to send employee change notification")
		return err
	}

	log.Info().Msg("sent employee change notification")
	return nil
}
