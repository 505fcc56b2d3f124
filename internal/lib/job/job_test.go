package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/employees-api/internal/lib/email"
	"github.com/deppfellow/employees-api/internal/model"
)

type recordingSender struct {
	to   []string
	sent []email.EmployeeChangedData
	err  error
}

func (s *recordingSender) SendEmployeeChanged(to string, data email.EmployeeChangedData) error {
	s.to = append(s.to, to)
	s.sent = append(s.sent, data)
	return s.err
}

func newTestJobService(sender EmployeeChangeSender) *JobService {
	log := zerolog.Nop()
	return &JobService{
		logger:            &log,
		sender:            sender,
		notificationEmail: "hr@example.com",
	}
}

func TestNewEmployeeChangedTask(t *testing.T) {
	employee := model.Employee{ID: 5, Name: "Lisa Anderson", Birthday: "1995-01-18", Salary: decimal.NewFromInt(58000)}

	task, err := NewEmployeeChangedTask(ActionCreated, employee)
	require.NoError(t, err)
	assert.Equal(t, TaskEmployeeChanged, task.Type())

	var payload EmployeeChangedPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, ActionCreated, payload.Action)
	assert.Equal(t, employee.ID, payload.Employee.ID)
	assert.True(t, employee.Salary.Equal(payload.Employee.Salary))
}

func TestHandleEmployeeChangedTask_Sends(t *testing.T) {
	sender := &recordingSender{}
	j := newTestJobService(sender)

	task, err := NewEmployeeChangedTask(ActionDeleted, model.Employee{ID: 7})
	require.NoError(t, err)

	require.NoError(t, j.handleEmployeeChangedTask(context.Background(), task))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"hr@example.com"}, sender.to)
	assert.Equal(t, ActionDeleted, sender.sent[0].Action)
	assert.Equal(t, int64(7), sender.sent[0].Employee.ID)
}

func TestHandleEmployeeChangedTask_SendFailureRetries(t *testing.T) {
	sendErr := errors.New("resend unavailable")
	j := newTestJobService(&recordingSender{err: sendErr})

	task, err := NewEmployeeChangedTask(ActionUpdated, model.Employee{ID: 1})
	require.NoError(t, err)

	err = j.handleEmployeeChangedTask(context.Background(), task)
	assert.ErrorIs(t, err, sendErr)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleEmployeeChangedTask_BadPayloadSkipsRetry(t *testing.T) {
	sender := &recordingSender{}
	j := newTestJobService(sender)

	err := j.handleEmployeeChangedTask(context.Background(), asynq.NewTask(TaskEmployeeChanged, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, sender.sent)
}
