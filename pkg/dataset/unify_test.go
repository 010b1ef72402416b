// pkg/dataset/unify_test.go
package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/peopleops/hr-insights/pkg/model"
)

func keyedOffice(t *testing.T, name, prefix string, ids ...int64) *model.Table {
	t.Helper()
	table := officeTable(name, toValues(ids)...)
	keyed, err := NewReindexer(zap.NewNop()).ReindexOffice(table, prefix)
	require.NoError(t, err)
	return keyed
}

func toValues(ids []int64) []interface{} {
	vals := make([]interface{}, len(ids))
	for i, id := range ids {
		vals[i] = id
	}
	return vals
}

func keyedHR(t *testing.T, keys ...string) *model.Table {
	t.Helper()
	table := model.NewTable("hr", []string{HRIDColumn, "salary"})
	for _, k := range keys {
		table.Append(model.Row{HRIDColumn: k, "salary": "low"})
	}
	keyed, err := NewReindexer(zap.NewNop()).ReindexHR(table)
	require.NoError(t, err)
	return keyed
}

func TestUnifyInnerJoinSemantics(t *testing.T) {
	officeA := keyedOffice(t, "office_a", OfficeAPrefix, 1, 2, 3)
	officeB := keyedOffice(t, "office_b", OfficeBPrefix, 1, 9)
	// B9 has no HR record; C5 has no office record; both drop out.
	hr := keyedHR(t, "A1", "A3", "B1", "C5")

	unified, err := NewUnifier(zap.NewNop()).Unify(officeA, officeB, hr)
	require.NoError(t, err)

	assert.Equal(t, []string{"A1", "A3", "B1"}, unified.Keys())
	assert.Equal(t, 3, unified.Len())
}

func TestUnifyMergesColumnsAndDropsRawIDs(t *testing.T) {
	officeA := keyedOffice(t, "office_a", OfficeAPrefix, 4)
	officeB := keyedOffice(t, "office_b", OfficeBPrefix, 7)
	hr := keyedHR(t, "A4", "B7")

	unified, err := NewUnifier(zap.NewNop()).Unify(officeA, officeB, hr)
	require.NoError(t, err)

	assert.False(t, unified.HasColumn(OfficeIDColumn))
	assert.False(t, unified.HasColumn(HRIDColumn))
	assert.True(t, unified.HasColumn("number_project"), "office columns survive")
	assert.True(t, unified.HasColumn("salary"), "hr columns survive")

	row, ok := unified.Lookup("A4")
	require.True(t, ok)
	assert.Equal(t, int64(3), row["number_project"])
	assert.Equal(t, "low", row["salary"])
}

func TestUnifySortsKeysLexically(t *testing.T) {
	officeA := keyedOffice(t, "office_a", OfficeAPrefix, 2, 10, 1)
	officeB := keyedOffice(t, "office_b", OfficeBPrefix, 5)
	hr := keyedHR(t, "A1", "A2", "A10", "B5")

	unified, err := NewUnifier(zap.NewNop()).Unify(officeA, officeB, hr)
	require.NoError(t, err)

	assert.Equal(t, []string{"A1", "A10", "A2", "B5"}, unified.Keys())
}

func TestUnifyFailsOnEmptyInput(t *testing.T) {
	officeA := keyedOffice(t, "office_a", OfficeAPrefix, 1)
	officeB := keyedOffice(t, "office_b", OfficeBPrefix)
	hr := keyedHR(t, "A1")

	_, err := NewUnifier(zap.NewNop()).Unify(officeA, officeB, hr)
	require.Error(t, err)

	var joinErr *JoinError
	assert.True(t, errors.As(err, &joinErr))
}

func TestUnifyDisjointKeyDomainsYieldEmptyResult(t *testing.T) {
	officeA := keyedOffice(t, "office_a", OfficeAPrefix, 1)
	officeB := keyedOffice(t, "office_b", OfficeBPrefix, 2)
	// Unprefixed HR keys never match prefixed office keys.
	hr := keyedHR(t, "1", "2")

	unified, err := NewUnifier(zap.NewNop()).Unify(officeA, officeB, hr)
	require.NoError(t, err)
	assert.Equal(t, 0, unified.Len())
}

func TestUnifyRowCountNeverExceedsIntersection(t *testing.T) {
	officeA := keyedOffice(t, "office_a", OfficeAPrefix, 1, 2, 3, 4)
	officeB := keyedOffice(t, "office_b", OfficeBPrefix, 1, 2)
	hr := keyedHR(t, "A1", "B1", "B2")

	unified, err := NewUnifier(zap.NewNop()).Unify(officeA, officeB, hr)
	require.NoError(t, err)
	assert.Equal(t, 3, unified.Len())
}
