// pkg/dataset/validate.go
package dataset

import "github.com/peopleops/hr-insights/pkg/model"

// RequiredColumns is the column contract every downstream query relies
// on. Column names follow the upstream HR export, including its
// inconsistent casing.
var RequiredColumns = []string{
	"number_project",
	"average_monthly_hours",
	"time_spend_company",
	"Work_accident",
	"promotion_last_5years",
	"Department",
	"salary",
	"satisfaction_level",
	"last_evaluation",
	"left",
}

// MissingColumns returns the required columns absent from the table.
func MissingColumns(t *model.Table) []string {
	var missing []string
	for _, col := range RequiredColumns {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// Validate confirms the unified table exposes every required column.
// Returns *SchemaError listing all missing columns; performs no
// correction.
func Validate(t *model.Table) error {
	if missing := MissingColumns(t); len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
