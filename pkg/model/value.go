// pkg/model/value.go
package model

import (
	"fmt"
	"strconv"
)

// Value is a single table cell. Loaders produce one of:
// int64, float64, string or bool.
type Value interface{}

// AsFloat converts a Value to float64.
// Booleans convert to 0/1 so flag columns can feed rate calculations.
func AsFloat(v Value) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int64:
		return float64(val), true
	case int:
		return float64(val), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// AsInt converts a Value to int64. Floats convert only when integral.
func AsInt(v Value) (int64, bool) {
	switch val := v.(type) {
	case int64:
		return val, true
	case int:
		return int64(val), true
	case float64:
		if val == float64(int64(val)) {
			return int64(val), true
		}
		return 0, false
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// AsString renders any Value as a string. Integral floats render without
// a fractional part so identifiers survive a float-typed source column.
func AsString(v Value) string {
	switch val := v.(type) {
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
