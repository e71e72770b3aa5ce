package dialect

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"github.com/oesnpg/dw-migrate/internal/schema"
)

// QuoteString renders s as a SQL string literal, doubling embedded quotes.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// ShortenIdentifier keeps name within limit characters. Names that fit are
// returned unchanged; longer ones keep a readable prefix and end in a hash of
// the full name, so distinct inputs stay distinct.
func ShortenIdentifier(name string, limit int) string {
	if len(name) <= limit {
		return name
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	suffix := fmt.Sprintf("_%08x", h.Sum32())
	return strings.TrimRight(name[:limit-len(suffix)], "_") + suffix
}

func identifier(kind IdentifierKind, table, column string) string {
	if column == "" {
		return fmt.Sprintf("%s_%s", kind, table)
	}
	return fmt.Sprintf("%s_%s_%s", kind, table, column)
}

// ddlBuilder holds the statement shapes both dialects share. Dialect specifics
// come in through the Dialect passed to each call.
type ddlBuilder struct{}

func (ddlBuilder) createTable(d Dialect, table *schema.Table, renderDefault func(*schema.Table, *schema.Column) string) (string, error) {
	defs := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		typ, err := d.RenderType(table, col)
		if err != nil {
			return "", err
		}

		def := fmt.Sprintf("    %s %s", col.Name, typ)
		if dv := renderDefault(table, col); dv != "" {
			def += " DEFAULT " + dv
		}
		if !col.Nullable {
			def += " NOT NULL"
		}
		if col.Unique {
			def += " UNIQUE"
		}
		defs = append(defs, def)
	}

	return fmt.Sprintf("CREATE TABLE %s (\n%s\n)", table.Name, strings.Join(defs, ",\n")), nil
}

func (ddlBuilder) primaryKey(d Dialect, table *schema.Table) string {
	if table.PrimaryKey == "" {
		return ""
	}
	return fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s PRIMARY KEY (%s)",
		table.Name, d.RenderIdentifier(PrimaryKey, table.Name, ""), table.PrimaryKey)
}

func (ddlBuilder) foreignKeys(d Dialect, table *schema.Table) []string {
	stmts := make([]string, 0, len(table.ForeignKeys))
	for _, fk := range table.ForeignKeys {
		stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(%s)",
			table.Name, d.RenderIdentifier(ForeignKey, table.Name, fk.Column), fk.Column, fk.RefTable, fk.RefColumn))
	}
	return stmts
}

// indexes renders one index per foreign key column of the fact table, then
// every declared index. Declared indexes are named after themselves.
func (ddlBuilder) indexes(d Dialect, table *schema.Table) []string {
	var stmts []string
	if table.IsFact() {
		for _, fk := range table.ForeignKeys {
			stmts = append(stmts, fmt.Sprintf("CREATE INDEX %s ON %s(%s)",
				d.RenderIdentifier(Index, table.Name, fk.Column), table.Name, fk.Column))
		}
	}
	for _, idx := range table.Indexes {
		create := "CREATE INDEX"
		if idx.Unique {
			create = "CREATE UNIQUE INDEX"
		}
		stmts = append(stmts, fmt.Sprintf("%s %s ON %s(%s)",
			create, d.RenderIdentifier(Index, idx.Name, ""), table.Name, strings.Join(idx.Columns, ", ")))
	}
	return stmts
}

func (ddlBuilder) comments(table *schema.Table) []string {
	var stmts []string
	if table.Comment != "" {
		stmts = append(stmts, fmt.Sprintf("COMMENT ON TABLE %s IS %s", table.Name, QuoteString(table.Comment)))
	}
	for _, col := range table.Columns {
		if col.Comment != "" {
			stmts = append(stmts, fmt.Sprintf("COMMENT ON COLUMN %s.%s IS %s", table.Name, col.Name, QuoteString(col.Comment)))
		}
	}
	return stmts
}

func (ddlBuilder) insert(table *schema.Table, cols []*schema.Column, values []any, literal func(*schema.Column, any) (string, error)) (string, error) {
	if len(cols) != len(values) {
		return "", fmt.Errorf("insert into %s: %d columns but %d values", table.Name, len(cols), len(values))
	}

	names := make([]string, len(cols))
	vals := make([]string, len(cols))
	for i, col := range cols {
		lit, err := literal(col, values[i])
		if err != nil {
			return "", fmt.Errorf("insert into %s: column %s: %w", table.Name, col.Name, err)
		}
		names[i] = col.Name
		vals[i] = lit
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table.Name, strings.Join(names, ", "), strings.Join(vals, ", ")), nil
}

// literal renders the parts of a value literal both dialects agree on.
// Booleans are dialect specific and handled by the caller.
func literal(col *schema.Column, v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "NULL", nil
	case string:
		return QuoteString(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		if col.Type.Kind == schema.Decimal {
			return strconv.FormatFloat(val, 'f', col.Type.Scale, 64), nil
		}
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case time.Time:
		if col.Type.Kind == schema.Timestamp {
			return "TIMESTAMP " + QuoteString(val.Format("2006-01-02 15:04:05")), nil
		}
		return "DATE " + QuoteString(val.Format("2006-01-02")), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
