// pkg/analysis/insights.go
package analysis

import (
	"sort"

	"go.uber.org/zap"

	"github.com/peopleops/hr-insights/pkg/model"
)

// DefaultLookupKeys are the employee keys HR asks about by name.
var DefaultLookupKeys = []string{"A4", "B7064", "A3033"}

// TopDepartmentsByHours returns the departments of the n employees with
// the largest average_monthly_hours, in descending hour order. Ties keep
// table order (stable selection); duplicate departments are allowed.
func (e *Engine) TopDepartmentsByHours(n int) ([]string, error) {
	t := e.table
	hours := make([]float64, t.Len())
	for i := 0; i < t.Len(); i++ {
		h, err := t.Float(i, "average_monthly_hours")
		if err != nil {
			return nil, err
		}
		hours[i] = h
	}

	order := make([]int, t.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return hours[order[a]] > hours[order[b]]
	})
	if n > len(order) {
		n = len(order)
	}

	departments := make([]string, 0, n)
	for _, idx := range order[:n] {
		dept, err := t.String(idx, "Department")
		if err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}
	return departments, nil
}

// ITLowSalaryProjectTotal sums number_project over IT-department
// employees in the low salary tier. Returns 0 when none match.
func (e *Engine) ITLowSalaryProjectTotal() (int64, error) {
	t := e.table
	var total int64
	for i := 0; i < t.Len(); i++ {
		dept, err := t.String(i, "Department")
		if err != nil {
			return 0, err
		}
		salary, err := t.String(i, "salary")
		if err != nil {
			return 0, err
		}
		if dept != "IT" || salary != SalaryLow {
			continue
		}
		projects, err := t.Int(i, "number_project")
		if err != nil {
			return 0, err
		}
		total += projects
	}
	return total, nil
}

// EmployeeScores is one point-lookup result. A key absent from the
// unified table yields nil scores, not an error.
type EmployeeScores struct {
	Key               string   `json:"key"`
	LastEvaluation    *float64 `json:"last_evaluation"`
	SatisfactionLevel *float64 `json:"satisfaction_level"`
}

// LookupEmployees returns, in request order, the last_evaluation and
// satisfaction_level for each key. Misses are logged and reported
// in-result as nil markers.
func (e *Engine) LookupEmployees(keys []string) ([]EmployeeScores, error) {
	t := e.table
	results := make([]EmployeeScores, 0, len(keys))
	for _, key := range keys {
		row, ok := t.Lookup(key)
		if !ok {
			e.logger.Warn("Employee key not found in unified dataset", zap.String("key", key))
			results = append(results, EmployeeScores{Key: key})
			continue
		}
		evaluation, okE := model.AsFloat(row["last_evaluation"])
		satisfaction, okS := model.AsFloat(row["satisfaction_level"])
		if !okE || !okS {
			results = append(results, EmployeeScores{Key: key})
			continue
		}
		results = append(results, EmployeeScores{
			Key:               key,
			LastEvaluation:    &evaluation,
			SatisfactionLevel: &satisfaction,
		})
	}
	return results, nil
}
