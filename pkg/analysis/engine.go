// pkg/analysis/engine.go
package analysis

import (
	"go.uber.org/zap"

	"github.com/peopleops/hr-insights/pkg/dataset"
	"github.com/peopleops/hr-insights/pkg/model"
)

// Engine answers the analytical query catalogue over the unified
// dataset. Every query is a pure read; the table is never mutated, so
// queries are safe to run in any order or concurrently.
type Engine struct {
	table  *model.Table
	logger *zap.Logger
}

// NewEngine creates a query engine over a unified table. The table is
// validated against the required-column contract before any query can
// run; a violation surfaces as *dataset.SchemaError here rather than as
// a missing-column failure halfway through a query.
func NewEngine(table *model.Table, logger *zap.Logger) (*Engine, error) {
	if table == nil {
		return nil, &dataset.PrerequisiteError{Operation: "query engine"}
	}
	if err := dataset.Validate(table); err != nil {
		return nil, err
	}
	return &Engine{table: table, logger: logger}, nil
}

// Table returns the unified table the engine reads from.
func (e *Engine) Table() *model.Table {
	return e.table
}
