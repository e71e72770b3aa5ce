package dialect

import (
	"fmt"
	"strings"
)

// GetDialect returns the Dialect registered under name. Lookup ignores case and
// accepts "postgres" as an alias of "postgresql".
func GetDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgresql", "postgres":
		return &PostgresDialect{}, nil
	case "oracle":
		return &OracleDialect{}, nil
	default:
		return nil, fmt.Errorf("unknown dialect %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
}

// GetCatalog returns the metadata queries for a dialect.
func GetCatalog(name string) (Catalog, error) {
	d, err := GetDialect(name)
	if err != nil {
		return nil, err
	}
	return d.(Catalog), nil
}

// Names lists the supported dialects in generation order.
func Names() []string {
	return []string{"postgresql", "oracle"}
}

// Ensure interface implementation
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*OracleDialect)(nil)
var _ Catalog = (*PostgresDialect)(nil)
var _ Catalog = (*OracleDialect)(nil)
