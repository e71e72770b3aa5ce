package schema

import (
	"fmt"
	"strings"
)

// SchemaDefinitionError reports every invariant violated while building a
// Schema. It is raised before any dialect rendering starts.
type SchemaDefinitionError struct {
	Schema   string
	Problems []string
}

func (e *SchemaDefinitionError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("schema %q: %s", e.Schema, e.Problems[0])
	}
	return fmt.Sprintf("schema %q: %d problems:\n  - %s", e.Schema, len(e.Problems), strings.Join(e.Problems, "\n  - "))
}
