// pkg/analysis/pivot.go
package analysis

import "go.uber.org/zap"

// Salary tiers referenced by the department pivot filter.
const (
	SalaryLow    = "low"
	SalaryMedium = "medium"
	SalaryHigh   = "high"
)

// DepartmentSalaryPivot is a cross-tabulation keyed department →
// attrition flag → salary tier, holding the median average_monthly_hours
// for that combination. A combination with no employees has no cell.
type DepartmentSalaryPivot map[string]map[int64]map[string]float64

// DepartmentSalaryHours builds the department/salary pivot and filters
// it: a department row survives when either
//
//	median hours of stayed+high  < stayed+medium, or
//	median hours of left+low     < left+high.
//
// An absent compared cell fails that condition. Medians are rounded to
// 2 decimals before the comparison.
func (e *Engine) DepartmentSalaryHours() (DepartmentSalaryPivot, error) {
	type cellKey struct {
		dept   string
		left   int64
		salary string
	}
	cells := make(map[cellKey][]float64)

	t := e.table
	for i := 0; i < t.Len(); i++ {
		dept, err := t.String(i, "Department")
		if err != nil {
			return nil, err
		}
		left, err := t.Int(i, "left")
		if err != nil {
			return nil, err
		}
		salary, err := t.String(i, "salary")
		if err != nil {
			return nil, err
		}
		hours, err := t.Float(i, "average_monthly_hours")
		if err != nil {
			return nil, err
		}
		k := cellKey{dept: dept, left: left, salary: salary}
		cells[k] = append(cells[k], hours)
	}

	pivot := make(DepartmentSalaryPivot)
	for k, hours := range cells {
		byLeft := pivot[k.dept]
		if byLeft == nil {
			byLeft = make(map[int64]map[string]float64)
			pivot[k.dept] = byLeft
		}
		bySalary := byLeft[k.left]
		if bySalary == nil {
			bySalary = make(map[string]float64)
			byLeft[k.left] = bySalary
		}
		bySalary[k.salary] = round2(median(hours))
	}

	for dept, byLeft := range pivot {
		stayedHigh, okSH := pivotCell(byLeft, 0, SalaryHigh)
		stayedMedium, okSM := pivotCell(byLeft, 0, SalaryMedium)
		leftLow, okLL := pivotCell(byLeft, 1, SalaryLow)
		leftHigh, okLH := pivotCell(byLeft, 1, SalaryHigh)

		keepStayed := okSH && okSM && stayedHigh < stayedMedium
		keepLeft := okLL && okLH && leftLow < leftHigh
		if !keepStayed && !keepLeft {
			delete(pivot, dept)
		}
	}

	e.logger.Debug("Department salary pivot computed", zap.Int("departments", len(pivot)))
	return pivot, nil
}

func pivotCell(byLeft map[int64]map[string]float64, left int64, salary string) (float64, bool) {
	bySalary, ok := byLeft[left]
	if !ok {
		return 0, false
	}
	v, ok := bySalary[salary]
	return v, ok
}

// PromotionStats holds per-cell statistics for the tenure/promotion
// pivot: min, max and mean of both satisfaction_level and
// last_evaluation.
type PromotionStats struct {
	SatisfactionMin  float64 `json:"satisfaction_level_min"`
	SatisfactionMax  float64 `json:"satisfaction_level_max"`
	SatisfactionMean float64 `json:"satisfaction_level_mean"`
	EvaluationMin    float64 `json:"last_evaluation_min"`
	EvaluationMax    float64 `json:"last_evaluation_max"`
	EvaluationMean   float64 `json:"last_evaluation_mean"`
}

// TenurePromotionPivot is keyed tenure (time_spend_company) → promotion
// flag → statistics.
type TenurePromotionPivot map[int64]map[int64]PromotionStats

// TenurePromotionStats builds the tenure/promotion pivot and keeps only
// the tenure rows where the mean last_evaluation of non-promoted
// employees strictly exceeds that of promoted ones. A tenure with only
// one promotion group present is dropped.
func (e *Engine) TenurePromotionStats() (TenurePromotionPivot, error) {
	type cellKey struct {
		tenure   int64
		promoted int64
	}
	type cell struct {
		satisfaction []float64
		evaluation   []float64
	}
	cells := make(map[cellKey]*cell)

	t := e.table
	for i := 0; i < t.Len(); i++ {
		tenure, err := t.Int(i, "time_spend_company")
		if err != nil {
			return nil, err
		}
		promoted, err := t.Int(i, "promotion_last_5years")
		if err != nil {
			return nil, err
		}
		satisfaction, err := t.Float(i, "satisfaction_level")
		if err != nil {
			return nil, err
		}
		evaluation, err := t.Float(i, "last_evaluation")
		if err != nil {
			return nil, err
		}
		k := cellKey{tenure: tenure, promoted: promoted}
		c := cells[k]
		if c == nil {
			c = &cell{}
			cells[k] = c
		}
		c.satisfaction = append(c.satisfaction, satisfaction)
		c.evaluation = append(c.evaluation, evaluation)
	}

	pivot := make(TenurePromotionPivot)
	for k, c := range cells {
		byPromoted := pivot[k.tenure]
		if byPromoted == nil {
			byPromoted = make(map[int64]PromotionStats)
			pivot[k.tenure] = byPromoted
		}
		byPromoted[k.promoted] = PromotionStats{
			SatisfactionMin:  round2(minOf(c.satisfaction)),
			SatisfactionMax:  round2(maxOf(c.satisfaction)),
			SatisfactionMean: round2(mean(c.satisfaction)),
			EvaluationMin:    round2(minOf(c.evaluation)),
			EvaluationMax:    round2(maxOf(c.evaluation)),
			EvaluationMean:   round2(mean(c.evaluation)),
		}
	}

	for tenure, byPromoted := range pivot {
		notPromoted, okN := byPromoted[0]
		promoted, okP := byPromoted[1]
		if !okN || !okP || notPromoted.EvaluationMean <= promoted.EvaluationMean {
			delete(pivot, tenure)
		}
	}

	e.logger.Debug("Tenure promotion pivot computed", zap.Int("tenures", len(pivot)))
	return pivot, nil
}
