// pkg/analysis/engine_test.go
package analysis

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/peopleops/hr-insights/pkg/dataset"
	"github.com/peopleops/hr-insights/pkg/model"
)

// fixtureRow fills in every required column so tests only spell out the
// cells they care about.
func fixtureRow(overrides model.Row) model.Row {
	row := model.Row{
		"number_project":        int64(2),
		"average_monthly_hours": int64(150),
		"time_spend_company":    int64(3),
		"Work_accident":         int64(0),
		"promotion_last_5years": int64(0),
		"Department":            "IT",
		"salary":                "low",
		"satisfaction_level":    0.5,
		"last_evaluation":       0.5,
		"left":                  int64(0),
	}
	for col, v := range overrides {
		row[col] = v
	}
	return row
}

func fixtureTable(t *testing.T, rows ...model.Row) *model.Table {
	t.Helper()
	table := model.NewTable("unified", dataset.RequiredColumns)
	keys := make([]string, len(rows))
	for i, row := range rows {
		table.Append(fixtureRow(row))
		keys[i] = fmt.Sprintf("A%d", i+1)
	}
	require.NoError(t, table.SetKeys(keys))
	return table
}

func newTestEngine(t *testing.T, rows ...model.Row) *Engine {
	t.Helper()
	engine, err := NewEngine(fixtureTable(t, rows...), zap.NewNop())
	require.NoError(t, err)
	return engine
}

func TestNewEngineRejectsNilTable(t *testing.T) {
	_, err := NewEngine(nil, zap.NewNop())
	require.Error(t, err)

	var prereq *dataset.PrerequisiteError
	assert.True(t, errors.As(err, &prereq))
}

func TestNewEngineRejectsIncompleteSchema(t *testing.T) {
	table := model.NewTable("unified", []string{"number_project"})
	_, err := NewEngine(table, zap.NewNop())
	require.Error(t, err)

	var schemaErr *dataset.SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}
