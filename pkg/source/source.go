// pkg/source/source.go
package source

import (
	"context"

	"github.com/peopleops/hr-insights/pkg/model"
)

// Logical source names the pipeline requests from any loader.
const (
	OfficeA = "office_a"
	OfficeB = "office_b"
	HR      = "hr"
)

// Names returns all logical source names in load order.
func Names() []string {
	return []string{OfficeA, OfficeB, HR}
}

// Loader retrieves one already-parsed source table per logical name.
// Implementations own all I/O; the pipeline never touches files or
// connections directly.
type Loader interface {
	// Load returns the ordered table for a logical source name.
	Load(ctx context.Context, name string) (*model.Table, error)

	// Close releases any resources held by the loader.
	Close() error
}
