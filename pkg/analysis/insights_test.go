// pkg/analysis/insights_test.go
package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/peopleops/hr-insights/pkg/model"
)

func TestTopDepartmentsByHours(t *testing.T) {
	// 15 rows with distinct hours 100..114, department named after its
	// hours so ordering is visible in the output.
	rows := make([]model.Row, 0, 15)
	for h := 100; h <= 114; h++ {
		rows = append(rows, model.Row{
			"average_monthly_hours": int64(h),
			"Department":            fmt.Sprintf("dept-%d", h),
		})
	}
	engine := newTestEngine(t, rows...)

	top, err := engine.TopDepartmentsByHours(10)
	require.NoError(t, err)

	expected := make([]string, 0, 10)
	for h := 114; h >= 105; h-- {
		expected = append(expected, fmt.Sprintf("dept-%d", h))
	}
	assert.Equal(t, expected, top)
}

func TestTopDepartmentsByHoursTiesKeepTableOrder(t *testing.T) {
	engine := newTestEngine(t,
		model.Row{"average_monthly_hours": int64(200), "Department": "first"},
		model.Row{"average_monthly_hours": int64(200), "Department": "second"},
		model.Row{"average_monthly_hours": int64(100), "Department": "third"},
	)

	top, err := engine.TopDepartmentsByHours(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, top)
}

func TestTopDepartmentsByHoursShortTable(t *testing.T) {
	engine := newTestEngine(t,
		model.Row{"average_monthly_hours": int64(100), "Department": "only"},
	)

	top, err := engine.TopDepartmentsByHours(10)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, top)
}

func TestITLowSalaryProjectTotal(t *testing.T) {
	engine := newTestEngine(t,
		model.Row{"Department": "IT", "salary": "low", "number_project": int64(2)},
		model.Row{"Department": "IT", "salary": "low", "number_project": int64(3)},
		model.Row{"Department": "IT", "salary": "low", "number_project": int64(5)},
		model.Row{"Department": "sales", "salary": "low", "number_project": int64(100)},
		model.Row{"Department": "IT", "salary": "high", "number_project": int64(100)},
	)

	total, err := engine.ITLowSalaryProjectTotal()
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)
}

func TestITLowSalaryProjectTotalNoMatches(t *testing.T) {
	engine := newTestEngine(t,
		model.Row{"Department": "sales", "salary": "high"},
	)

	total, err := engine.ITLowSalaryProjectTotal()
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestLookupEmployeesReturnsScoresInRequestOrder(t *testing.T) {
	table := model.NewTable("unified", []string{
		"number_project", "average_monthly_hours", "time_spend_company",
		"Work_accident", "promotion_last_5years", "Department", "salary",
		"satisfaction_level", "last_evaluation", "left",
	})
	table.Append(fixtureRow(model.Row{"last_evaluation": 0.8, "satisfaction_level": 0.5}))
	table.Append(fixtureRow(model.Row{"last_evaluation": 0.9, "satisfaction_level": 0.1}))
	require.NoError(t, table.SetKeys([]string{"A4", "A3033"}))

	engine, err := NewEngine(table, zap.NewNop())
	require.NoError(t, err)

	results, err := engine.LookupEmployees([]string{"A4", "B7064", "A3033"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.NotNil(t, results[0].LastEvaluation)
	assert.Equal(t, 0.8, *results[0].LastEvaluation)
	assert.Equal(t, 0.5, *results[0].SatisfactionLevel)

	assert.Equal(t, "B7064", results[1].Key)
	assert.Nil(t, results[1].LastEvaluation, "miss is a nil marker, not an error")
	assert.Nil(t, results[1].SatisfactionLevel)

	require.NotNil(t, results[2].LastEvaluation)
	assert.Equal(t, 0.9, *results[2].LastEvaluation)
}

func TestDefaultLookupKeys(t *testing.T) {
	assert.Equal(t, []string{"A4", "B7064", "A3033"}, DefaultLookupKeys)
}
