package dialect

import (
	"fmt"

	"github.com/oesnpg/dw-migrate/internal/schema"
)

// UnsupportedTypeError is returned when a column's semantic type has no
// mapping in a dialect. It is a configuration error and is never defaulted.
type UnsupportedTypeError struct {
	Dialect string
	Table   string
	Column  string
	Type    schema.TypeKind
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: column %s.%s has unsupported type %q", e.Dialect, e.Table, e.Column, e.Type)
}
