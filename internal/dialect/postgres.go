package dialect

import (
	"fmt"
	"strings"

	"github.com/oesnpg/dw-migrate/internal/schema"
)

const postgresIdentifierLimit = 63

type PostgresDialect struct {
	ddlBuilder
}

func (d *PostgresDialect) Name() string {
	return "postgresql"
}

func (d *PostgresDialect) RenderType(table *schema.Table, col *schema.Column) (string, error) {
	t := col.Type
	switch t.Kind {
	case schema.Integer:
		return "INTEGER", nil
	case schema.BigInt:
		return "BIGINT", nil
	case schema.Serial:
		return "SERIAL", nil
	case schema.Decimal:
		return fmt.Sprintf("NUMERIC(%d,%d)", t.Precision, t.Scale), nil
	case schema.Varchar:
		return fmt.Sprintf("VARCHAR(%d)", t.Length), nil
	case schema.Text:
		return "TEXT", nil
	case schema.Boolean:
		return "BOOLEAN", nil
	case schema.Date:
		return "DATE", nil
	case schema.Timestamp:
		return "TIMESTAMP", nil
	default:
		return "", &UnsupportedTypeError{Dialect: d.Name(), Table: table.Name, Column: col.Name, Type: t.Kind}
	}
}

func (d *PostgresDialect) RenderIdentifier(kind IdentifierKind, table, column string) string {
	return ShortenIdentifier(strings.ToLower(identifier(kind, table, column)), postgresIdentifierLimit)
}

// RenderSequences returns nothing: SERIAL owns an implicit sequence.
func (d *PostgresDialect) RenderSequences(table *schema.Table) []string {
	return nil
}

func (d *PostgresDialect) RenderCreateTable(table *schema.Table) (string, error) {
	return d.createTable(d, table, d.renderDefault)
}

func (d *PostgresDialect) renderDefault(_ *schema.Table, col *schema.Column) string {
	if col.Type.Kind == schema.Serial {
		return ""
	}
	if col.Type.Kind == schema.Boolean {
		switch strings.ToLower(col.Default) {
		case "true", "1":
			return "TRUE"
		case "false", "0":
			return "FALSE"
		}
	}
	return col.Default
}

func (d *PostgresDialect) RenderPrimaryKey(table *schema.Table) string {
	return d.primaryKey(d, table)
}

func (d *PostgresDialect) RenderForeignKeys(table *schema.Table) []string {
	return d.foreignKeys(d, table)
}

func (d *PostgresDialect) RenderIndexes(table *schema.Table) []string {
	return d.indexes(d, table)
}

func (d *PostgresDialect) RenderComments(table *schema.Table) []string {
	return d.comments(table)
}

func (d *PostgresDialect) RenderInsert(table *schema.Table, cols []*schema.Column, values []any) (string, error) {
	return d.insert(table, cols, values, func(col *schema.Column, v any) (string, error) {
		if b, ok := v.(bool); ok {
			if b {
				return "TRUE", nil
			}
			return "FALSE", nil
		}
		return literal(col, v)
	})
}

func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

func (d *PostgresDialect) DefaultSchema() string {
	return "public"
}

func (d *PostgresDialect) TablesQuery() string {
	return `SELECT table_name FROM information_schema.tables WHERE table_schema = $1 AND table_type = 'BASE TABLE' ORDER BY table_name`
}

func (d *PostgresDialect) ColumnsQuery() string {
	// udt_name keeps int4/varchar/numeric instead of the verbose SQL names.
	return `SELECT c.table_name, c.column_name, c.udt_name, c.is_nullable
FROM information_schema.columns c
WHERE c.table_schema = $1
ORDER BY c.table_name, c.ordinal_position`
}

func (d *PostgresDialect) ForeignKeysQuery() string {
	return `SELECT kcu.table_name, kcu.column_name, ccu.table_name AS referenced_table_name, ccu.column_name AS referenced_column_name
FROM information_schema.key_column_usage kcu
JOIN information_schema.constraint_column_usage ccu ON kcu.constraint_name = ccu.constraint_name AND kcu.table_schema = ccu.table_schema
JOIN information_schema.table_constraints tc ON kcu.constraint_name = tc.constraint_name AND kcu.table_schema = tc.table_schema
WHERE kcu.table_schema = $1 AND tc.constraint_type = 'FOREIGN KEY'
ORDER BY kcu.table_name, kcu.column_name`
}
