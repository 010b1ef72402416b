// pkg/analysis/metrics_test.go
package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleops/hr-insights/pkg/model"
)

func TestEmployeeMetricsGroupsByAttrition(t *testing.T) {
	engine := newTestEngine(t,
		// stayed
		model.Row{"left": int64(0), "number_project": int64(2), "time_spend_company": int64(2), "Work_accident": int64(0), "last_evaluation": 0.5},
		model.Row{"left": int64(0), "number_project": int64(6), "time_spend_company": int64(4), "Work_accident": int64(1), "last_evaluation": 0.6},
		model.Row{"left": int64(0), "number_project": int64(7), "time_spend_company": int64(6), "Work_accident": int64(0), "last_evaluation": 0.7},
		// departed
		model.Row{"left": int64(1), "number_project": int64(4), "time_spend_company": int64(5), "Work_accident": int64(1), "last_evaluation": 0.9},
		model.Row{"left": int64(1), "number_project": int64(8), "time_spend_company": int64(3), "Work_accident": int64(1), "last_evaluation": 0.3},
	)

	metrics, err := engine.EmployeeMetrics()
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	stayed := metrics[0]
	assert.Equal(t, 6.0, stayed.ProjectMedian)
	assert.Equal(t, 2, stayed.ProjectsOverFive)
	assert.Equal(t, 4.0, stayed.TenureMean)
	assert.Equal(t, 4.0, stayed.TenureMedian)
	assert.Equal(t, 0.33, stayed.AccidentRate)
	assert.Equal(t, 0.6, stayed.EvaluationMean)
	assert.Equal(t, 0.1, stayed.EvaluationStdDev)

	departed := metrics[1]
	assert.Equal(t, 6.0, departed.ProjectMedian)
	assert.Equal(t, 1, departed.ProjectsOverFive)
	assert.Equal(t, 4.0, departed.TenureMean)
	assert.Equal(t, 1.0, departed.AccidentRate)
	assert.Equal(t, 0.6, departed.EvaluationMean)
}

func TestEmployeeMetricsOmitsEmptyGroup(t *testing.T) {
	engine := newTestEngine(t,
		model.Row{"left": int64(0)},
		model.Row{"left": int64(0)},
	)

	metrics, err := engine.EmployeeMetrics()
	require.NoError(t, err)

	_, hasDeparted := metrics[1]
	assert.False(t, hasDeparted, "no left==1 rows means no left==1 group")
	_, hasStayed := metrics[0]
	assert.True(t, hasStayed)
}

func TestEmployeeMetricsSingleRowGroupHasZeroSpread(t *testing.T) {
	engine := newTestEngine(t,
		model.Row{"left": int64(1), "last_evaluation": 0.8},
	)

	metrics, err := engine.EmployeeMetrics()
	require.NoError(t, err)
	assert.Equal(t, 0.0, metrics[1].EvaluationStdDev)
}
