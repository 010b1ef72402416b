// pkg/report/report.go
package report

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peopleops/hr-insights/pkg/analysis"
	"github.com/peopleops/hr-insights/pkg/dataset"
	"github.com/peopleops/hr-insights/pkg/model"
)

// indexSampleSize is how many leading keys the dataset summary carries.
const indexSampleSize = 10

// DatasetInfo summarizes the unified dataset's shape.
type DatasetInfo struct {
	Rows        int      `json:"rows"`
	Columns     int      `json:"columns"`
	ColumnNames []string `json:"column_names"`
	IndexSample []string `json:"index_sample"`
}

// Insights groups the scalar/list query answers.
type Insights struct {
	TopDepartments    []string                  `json:"top_departments"`
	ITProjectsTotal   int64                     `json:"it_projects_total"`
	SpecificEmployees []analysis.EmployeeScores `json:"specific_employees"`
}

// Report packages every query result plus dataset metadata. It is the
// single artifact the pipeline hands to the presentation layer.
type Report struct {
	ID                 string                              `json:"id"`
	GeneratedAt        time.Time                           `json:"generated_at"`
	Dataset            DatasetInfo                         `json:"dataset_info"`
	EmployeeMetrics    map[int64]analysis.AttritionMetrics `json:"employee_metrics"`
	DepartmentAnalysis analysis.DepartmentSalaryPivot      `json:"department_analysis"`
	TimeAnalysis       analysis.TenurePromotionPivot       `json:"time_analysis"`
	Insights           Insights                            `json:"insights"`
}

// Assembler runs the full query catalogue and packages the results.
type Assembler struct {
	logger *zap.Logger
}

// NewAssembler creates a new Assembler.
func NewAssembler(logger *zap.Logger) *Assembler {
	return &Assembler{logger: logger}
}

// Build runs every analytical query against the unified table and
// returns the assembled report. There are no partial reports: the first
// failing query aborts assembly and propagates.
func (a *Assembler) Build(unified *model.Table) (*Report, error) {
	if unified == nil {
		return nil, &dataset.PrerequisiteError{Operation: "report assembly"}
	}

	engine, err := analysis.NewEngine(unified, a.logger)
	if err != nil {
		return nil, err
	}

	metrics, err := engine.EmployeeMetrics()
	if err != nil {
		return nil, err
	}
	departments, err := engine.DepartmentSalaryHours()
	if err != nil {
		return nil, err
	}
	tenure, err := engine.TenurePromotionStats()
	if err != nil {
		return nil, err
	}
	topDepartments, err := engine.TopDepartmentsByHours(10)
	if err != nil {
		return nil, err
	}
	itTotal, err := engine.ITLowSalaryProjectTotal()
	if err != nil {
		return nil, err
	}
	employees, err := engine.LookupEmployees(analysis.DefaultLookupKeys)
	if err != nil {
		return nil, err
	}

	keys := unified.Keys()
	if len(keys) > indexSampleSize {
		keys = keys[:indexSampleSize]
	}

	rpt := &Report{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Dataset: DatasetInfo{
			Rows:        unified.Len(),
			Columns:     len(unified.Columns()),
			ColumnNames: unified.Columns(),
			IndexSample: keys,
		},
		EmployeeMetrics:    metrics,
		DepartmentAnalysis: departments,
		TimeAnalysis:       tenure,
		Insights: Insights{
			TopDepartments:    topDepartments,
			ITProjectsTotal:   itTotal,
			SpecificEmployees: employees,
		},
	}

	a.logger.Info("Report assembled",
		zap.String("reportID", rpt.ID),
		zap.Int("rows", rpt.Dataset.Rows),
		zap.Int("columns", rpt.Dataset.Columns))

	return rpt, nil
}
