// pkg/model/table.go
package model

import (
	"fmt"
	"sort"
)

// Row maps column names to scalar cell values.
type Row map[string]Value

// Table is an in-memory tabular relation: ordered rows, a named column
// set and an optional string key per row. Loaders produce unkeyed
// tables; the dataset layer assigns keys and treats tables as
// immutable from then on.
type Table struct {
	name    string
	columns []string
	rows    []Row
	keys    []string
	byKey   map[string]int
}

// NewTable creates an empty table with a fixed column set.
func NewTable(name string, columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{
		name:    name,
		columns: cols,
	}
}

// Name returns the table's source name.
func (t *Table) Name() string {
	return t.name
}

// Columns returns the ordered column names.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// HasColumn reports whether a column exists in the table.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.columns {
		if col == name {
			return true
		}
	}
	return false
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Append adds a row to the end of the table.
func (t *Table) Append(row Row) {
	t.rows = append(t.rows, row)
}

// Row returns the row at position i.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Key returns the key of the row at position i, or "" if the table
// has no key index yet.
func (t *Table) Key(i int) string {
	if i >= len(t.keys) {
		return ""
	}
	return t.keys[i]
}

// Keys returns a copy of all row keys in row order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// SetKeys assigns one key per row and builds the lookup index.
// Key uniqueness is the caller's contract; on duplicates the index
// keeps the first occurrence.
func (t *Table) SetKeys(keys []string) error {
	if len(keys) != len(t.rows) {
		return fmt.Errorf("table %s: %d keys for %d rows", t.name, len(keys), len(t.rows))
	}
	t.keys = make([]string, len(keys))
	copy(t.keys, keys)
	t.byKey = make(map[string]int, len(keys))
	for i, k := range keys {
		if _, exists := t.byKey[k]; !exists {
			t.byKey[k] = i
		}
	}
	return nil
}

// Lookup returns the row for a key, if present.
func (t *Table) Lookup(key string) (Row, bool) {
	if t.byKey == nil {
		return nil, false
	}
	i, ok := t.byKey[key]
	if !ok {
		return nil, false
	}
	return t.rows[i], true
}

// HasKey reports whether a key exists in the table's index.
func (t *Table) HasKey(key string) bool {
	_, ok := t.byKey[key]
	return ok
}

// SortByKey reorders rows ascending by key using plain lexical string
// order ("A1" < "A10" < "A2") and rebuilds the lookup index.
func (t *Table) SortByKey() {
	order := make([]int, len(t.rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return t.keys[order[a]] < t.keys[order[b]]
	})

	rows := make([]Row, len(t.rows))
	keys := make([]string, len(t.keys))
	for pos, idx := range order {
		rows[pos] = t.rows[idx]
		keys[pos] = t.keys[idx]
	}
	t.rows = rows
	t.keys = keys
	t.byKey = make(map[string]int, len(keys))
	for i, k := range keys {
		if _, exists := t.byKey[k]; !exists {
			t.byKey[k] = i
		}
	}
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	clone := NewTable(t.name, t.columns)
	clone.rows = make([]Row, len(t.rows))
	for i, row := range t.rows {
		copied := make(Row, len(row))
		for col, v := range row {
			copied[col] = v
		}
		clone.rows[i] = copied
	}
	if t.keys != nil {
		keys := make([]string, len(t.keys))
		copy(keys, t.keys)
		// len(keys) == len(rows) holds for any table built through SetKeys
		_ = clone.SetKeys(keys)
	}
	return clone
}

// DropColumns removes columns from the schema and from every row.
// Unknown names are ignored.
func (t *Table) DropColumns(names ...string) {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	kept := t.columns[:0]
	for _, col := range t.columns {
		if !drop[col] {
			kept = append(kept, col)
		}
	}
	t.columns = kept
	for _, row := range t.rows {
		for n := range drop {
			delete(row, n)
		}
	}
}

// Float reads a numeric cell.
func (t *Table) Float(i int, col string) (float64, error) {
	v, ok := t.rows[i][col]
	if !ok {
		return 0, fmt.Errorf("table %s row %s: column %q missing", t.name, t.rowRef(i), col)
	}
	f, ok := AsFloat(v)
	if !ok {
		return 0, fmt.Errorf("table %s row %s: column %q is not numeric (%T)", t.name, t.rowRef(i), col, v)
	}
	return f, nil
}

// Int reads an integer cell.
func (t *Table) Int(i int, col string) (int64, error) {
	v, ok := t.rows[i][col]
	if !ok {
		return 0, fmt.Errorf("table %s row %s: column %q missing", t.name, t.rowRef(i), col)
	}
	n, ok := AsInt(v)
	if !ok {
		return 0, fmt.Errorf("table %s row %s: column %q is not an integer (%T)", t.name, t.rowRef(i), col, v)
	}
	return n, nil
}

// String reads a cell rendered as a string.
func (t *Table) String(i int, col string) (string, error) {
	v, ok := t.rows[i][col]
	if !ok {
		return "", fmt.Errorf("table %s row %s: column %q missing", t.name, t.rowRef(i), col)
	}
	return AsString(v), nil
}

// rowRef identifies a row in error messages: its key when indexed,
// otherwise its position.
func (t *Table) rowRef(i int) string {
	if i < len(t.keys) && t.keys[i] != "" {
		return t.keys[i]
	}
	return fmt.Sprintf("#%d", i)
}
