package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/employees-api/internal/testutil"
)

func TestRun_FixedEmployeesInOrder(t *testing.T) {
	store := testutil.NewMemoryEmployeeStore()

	created, err := Run(context.Background(), store, 0)
	require.NoError(t, err)
	require.Len(t, created, 12)

	assert.Equal(t, "John Smith", created[0].Name)
	assert.Equal(t, "1985-03-15", created[0].Birthday)
	assert.Equal(t, "65000", created[0].Salary.String())
	assert.Equal(t, "Michelle White", created[11].Name)

	for i, e := range created {
		assert.Equal(t, int64(i+1), e.ID)
	}
}

func TestRun_WithRandomEmployees(t *testing.T) {
	store := testutil.NewMemoryEmployeeStore()

	created, err := Run(context.Background(), store, 5)
	require.NoError(t, err)
	assert.Len(t, created, 17)

	list, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 17)
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	store := testutil.NewMemoryEmployeeStore()
	store.Err = errors.New("relation \"employees\" does not exist")

	created, err := Run(context.Background(), store, 0)
	assert.ErrorIs(t, err, store.Err)
	assert.Empty(t, created)
	assert.Equal(t, 1, store.Calls)
}

func TestRandomEmployees_Ranges(t *testing.T) {
	for _, e := range RandomEmployees(faker.New(), 50) {
		assert.NotEmpty(t, e.Name)

		birthday, err := time.Parse(time.DateOnly, e.Birthday)
		require.NoError(t, err)
		assert.False(t, birthday.Before(oldestBirthday), e.Birthday)
		assert.False(t, birthday.After(youngestBirthday), e.Birthday)

		salary := e.Salary.IntPart()
		assert.GreaterOrEqual(t, salary, int64(minSalary))
		assert.LessOrEqual(t, salary, int64(maxSalary))
	}
}
