// pkg/dataset/reindex.go
package dataset

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/peopleops/hr-insights/pkg/model"
)

// Column names carrying the raw identifiers in the source tables.
const (
	OfficeIDColumn = "employee_office_id"
	HRIDColumn     = "employee_id"
)

// Office key prefixes. The prefix tags every employee key with its
// source office, which keeps the two office key spaces disjoint.
const (
	OfficeAPrefix = "A"
	OfficeBPrefix = "B"
)

// Reindexer derives a stable row key for each source table and applies
// it as the table's index. Loader output is not mutated; re-keyed
// copies are returned.
type Reindexer struct {
	logger *zap.Logger
}

// NewReindexer creates a new Reindexer.
func NewReindexer(logger *zap.Logger) *Reindexer {
	return &Reindexer{logger: logger}
}

// ReindexOffice keys an office table by prefix + employee_office_id.
// Fails with *IntegrityError when two rows derive the same key.
func (r *Reindexer) ReindexOffice(t *model.Table, prefix string) (*model.Table, error) {
	if !t.HasColumn(OfficeIDColumn) {
		return nil, fmt.Errorf("table %s: column %q missing, cannot derive keys", t.Name(), OfficeIDColumn)
	}

	keys := make([]string, t.Len())
	seen := make(map[string]bool, t.Len())
	var dups []string
	for i := 0; i < t.Len(); i++ {
		id, err := t.String(i, OfficeIDColumn)
		if err != nil {
			return nil, err
		}
		key := prefix + id
		if seen[key] {
			dups = append(dups, key)
		}
		seen[key] = true
		keys[i] = key
	}
	if len(dups) > 0 {
		return nil, &IntegrityError{Table: t.Name(), Keys: dups}
	}

	keyed := t.Clone()
	if err := keyed.SetKeys(keys); err != nil {
		return nil, err
	}

	r.logger.Info("Reindexed office table",
		zap.String("table", t.Name()),
		zap.String("prefix", prefix),
		zap.Int("rows", keyed.Len()))

	return keyed, nil
}

// ReindexHR keys the HR table by its employee_id column. The raw value
// is rendered as a string so the key domain matches the prefixed office
// keys at join time.
func (r *Reindexer) ReindexHR(t *model.Table) (*model.Table, error) {
	if !t.HasColumn(HRIDColumn) {
		return nil, fmt.Errorf("table %s: column %q missing, cannot derive keys", t.Name(), HRIDColumn)
	}

	keys := make([]string, t.Len())
	seen := make(map[string]bool, t.Len())
	var dups []string
	for i := 0; i < t.Len(); i++ {
		id, err := t.String(i, HRIDColumn)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			dups = append(dups, id)
		}
		seen[id] = true
		keys[i] = id
	}
	if len(dups) > 0 {
		return nil, &IntegrityError{Table: t.Name(), Keys: dups}
	}

	keyed := t.Clone()
	if err := keyed.SetKeys(keys); err != nil {
		return nil, err
	}

	r.logger.Info("Reindexed HR table",
		zap.String("table", t.Name()),
		zap.Int("rows", keyed.Len()))

	return keyed, nil
}
