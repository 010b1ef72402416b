// pkg/dataset/errors.go
package dataset

import (
	"fmt"
	"strings"
)

// IntegrityError reports duplicate derived keys within a single source
// table. Duplicate raw identifiers are a data-integrity violation and
// abort the pipeline rather than being merged silently.
type IntegrityError struct {
	Table string
	Keys  []string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity violation in table %s: duplicate keys [%s]",
		e.Table, strings.Join(e.Keys, ", "))
}

// JoinError reports degenerate join inputs, such as an empty source table.
type JoinError struct {
	Reason string
}

func (e *JoinError) Error() string {
	return "join failed: " + e.Reason
}

// SchemaError reports required columns missing from the unified table.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: [%s]", strings.Join(e.Missing, ", "))
}

// PrerequisiteError reports an operation invoked before the unified
// table was built.
type PrerequisiteError struct {
	Operation string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("%s requires a unified dataset, none was built", e.Operation)
}
