// Package seed fills the employees table with sample data.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jaswdr/faker"
	"github.com/shopspring/decimal"

	"github.com/deppfellow/employees-api/internal/model"
)

// Creator is the part of the employee store the seeder needs.
type Creator interface {
	Create(ctx context.Context, fields model.EmployeeFields) (*model.Employee, error)
}

// Employees is the fixed sample data set, inserted in this order.
var Employees = []model.EmployeeFields{
	{Name: "John Smith", Birthday: "1985-03-15", Salary: decimal.NewFromInt(65000)},
	{Name: "Sarah Johnson", Birthday: "1990-07-22", Salary: decimal.NewFromInt(72000)},
	{Name: "Michael Brown", Birthday: "1988-11-08", Salary: decimal.NewFromInt(68000)},
	{Name: "Emily Davis", Birthday: "1992-04-12", Salary: decimal.NewFromInt(75000)},
	{Name: "David Wilson", Birthday: "1983-09-30", Salary: decimal.NewFromInt(82000)},
	{Name: "Lisa Anderson", Birthday: "1995-01-18", Salary: decimal.NewFromInt(58000)},
	{Name: "Robert Taylor", Birthday: "1987-06-25", Salary: decimal.NewFromInt(71000)},
	{Name: "Jennifer Martinez", Birthday: "1991-12-03", Salary: decimal.NewFromInt(69000)},
	{Name: "Christopher Garcia", Birthday: "1986-08-14", Salary: decimal.NewFromInt(78000)},
	{Name: "Amanda Rodriguez", Birthday: "1993-05-20", Salary: decimal.NewFromInt(64000)},
	{Name: "James Lee", Birthday: "1989-02-28", Salary: decimal.NewFromInt(76000)},
	{Name: "Michelle White", Birthday: "1994-10-11", Salary: decimal.NewFromInt(67000)},
}

var (
	oldestBirthday   = time.Date(1960, time.January, 1, 0, 0, 0, 0, time.UTC)
	youngestBirthday = time.Date(2005, time.December, 31, 0, 0, 0, 0, time.UTC)
)

const (
	minSalary = 40000
	maxSalary = 120000
)

// RandomEmployees generates n employees with fake names, birthdays between
// 1960 and 2005 and whole salaries between 40 000 and 120 000.
func RandomEmployees(generator faker.Faker, n int) []model.EmployeeFields {
	person := generator.Person()
	employees := make([]model.EmployeeFields, 0, n)

	for range n {
		employees = append(employees, model.EmployeeFields{
			Name:     person.FirstName() + " " + person.LastName(),
			Birthday: generator.Time().TimeBetween(oldestBirthday, youngestBirthday).Format(time.DateOnly),
			Salary:   decimal.NewFromInt(int64(generator.IntBetween(minSalary, maxSalary))),
		})
	}

	return employees
}

// Run inserts the fixed employees followed by random extra ones, stopping at
// the first failure. It returns the rows created so far.
func Run(ctx context.Context, store Creator, random int) ([]model.Employee, error) {
	all := append([]model.EmployeeFields{}, Employees...)
	if random > 0 {
		all = append(all, RandomEmployees(faker.New(), random)...)
	}

	created := make([]model.Employee, 0, len(all))
	for i, fields := range all {
		e, err := store.Create(ctx, fields)
		if err != nil {
			return created, fmt.Errorf("seed employee %d (%s): %w", i+1, fields.Name, err)
		}
		created = append(created, *e)
	}

	return created, nil
}
