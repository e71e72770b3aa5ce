package dialect

import "github.com/oesnpg/dw-migrate/internal/schema"

// IdentifierKind selects the naming convention applied by RenderIdentifier.
type IdentifierKind string

const (
	PrimaryKey IdentifierKind = "pk"
	ForeignKey IdentifierKind = "fk"
	Index      IdentifierKind = "idx"
	Sequence   IdentifierKind = "seq"
)

// Dialect renders DDL for one database family. Every method is a pure
// function of its arguments: no connection, no clock, no randomness.
type Dialect interface {
	Name() string

	// Type Mapping
	RenderType(table *schema.Table, col *schema.Column) (string, error)

	// Naming Convention
	RenderIdentifier(kind IdentifierKind, table, column string) string

	// Statement Rendering (statements carry no trailing terminator)
	RenderSequences(table *schema.Table) []string
	RenderCreateTable(table *schema.Table) (string, error)
	RenderPrimaryKey(table *schema.Table) string
	RenderForeignKeys(table *schema.Table) []string
	RenderIndexes(table *schema.Table) []string
	RenderComments(table *schema.Table) []string

	// Data (seed scripts)
	RenderInsert(table *schema.Table, cols []*schema.Column, values []any) (string, error)
}

// Catalog abstracts the metadata queries used to read a live schema back.
// Every query takes the schema/owner name as its single bind parameter.
type Catalog interface {
	DriverName() string
	DefaultSchema() string

	// Rows: table_name
	TablesQuery() string
	// Rows: table_name, column_name, data_type, is_nullable (YES/NO)
	ColumnsQuery() string
	// Rows: table_name, column_name, referenced_table, referenced_column
	ForeignKeysQuery() string
}
