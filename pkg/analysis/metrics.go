// pkg/analysis/metrics.go
package analysis

// AttritionMetrics holds the grouped employee metrics for one value of
// the attrition flag (left = 0 stayed, 1 departed).
type AttritionMetrics struct {
	ProjectMedian    float64 `json:"number_project_median"`
	ProjectsOverFive int     `json:"number_project_over_five"`
	TenureMean       float64 `json:"time_spend_company_mean"`
	TenureMedian     float64 `json:"time_spend_company_median"`
	AccidentRate     float64 `json:"work_accident_rate"`
	EvaluationMean   float64 `json:"last_evaluation_mean"`
	EvaluationStdDev float64 `json:"last_evaluation_std"`
}

// EmployeeMetrics groups the unified rows by the attrition flag and
// computes, per group:
//   - median number_project and the count of rows with more than five projects
//   - mean and median time_spend_company
//   - mean Work_accident (the accident rate as a fraction)
//   - mean and sample standard deviation of last_evaluation
//
// All rounded to 2 decimals. A flag value with no rows is absent from
// the result.
func (e *Engine) EmployeeMetrics() (map[int64]AttritionMetrics, error) {
	type accumulator struct {
		projects []float64
		tenure   []float64
		accident []float64
		evals    []float64
	}
	groups := make(map[int64]*accumulator)

	t := e.table
	for i := 0; i < t.Len(); i++ {
		left, err := t.Int(i, "left")
		if err != nil {
			return nil, err
		}
		acc := groups[left]
		if acc == nil {
			acc = &accumulator{}
			groups[left] = acc
		}

		projects, err := t.Float(i, "number_project")
		if err != nil {
			return nil, err
		}
		tenure, err := t.Float(i, "time_spend_company")
		if err != nil {
			return nil, err
		}
		accident, err := t.Float(i, "Work_accident")
		if err != nil {
			return nil, err
		}
		evaluation, err := t.Float(i, "last_evaluation")
		if err != nil {
			return nil, err
		}

		acc.projects = append(acc.projects, projects)
		acc.tenure = append(acc.tenure, tenure)
		acc.accident = append(acc.accident, accident)
		acc.evals = append(acc.evals, evaluation)
	}

	result := make(map[int64]AttritionMetrics, len(groups))
	for left, acc := range groups {
		over5 := 0
		for _, p := range acc.projects {
			if p > 5 {
				over5++
			}
		}
		result[left] = AttritionMetrics{
			ProjectMedian:    round2(median(acc.projects)),
			ProjectsOverFive: over5,
			TenureMean:       round2(mean(acc.tenure)),
			TenureMedian:     round2(median(acc.tenure)),
			AccidentRate:     round2(mean(acc.accident)),
			EvaluationMean:   round2(mean(acc.evals)),
			EvaluationStdDev: round2(sampleStdDev(acc.evals)),
		}
	}
	return result, nil
}
