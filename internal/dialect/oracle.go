package dialect

import (
	"fmt"
	"strings"

	"github.com/oesnpg/dw-migrate/internal/schema"
)

const oracleIdentifierLimit = 128

// OracleDialect emits an explicit sequence for every SERIAL column and wires
// it in as the column default, so the sequences must exist before the tables.
type OracleDialect struct {
	ddlBuilder
}

func (d *OracleDialect) Name() string {
	return "oracle"
}

func (d *OracleDialect) RenderType(table *schema.Table, col *schema.Column) (string, error) {
	t := col.Type
	switch t.Kind {
	case schema.Integer, schema.Serial:
		return "NUMBER(10)", nil
	case schema.BigInt:
		return "NUMBER(19)", nil
	case schema.Decimal:
		return fmt.Sprintf("NUMBER(%d,%d)", t.Precision, t.Scale), nil
	case schema.Varchar:
		return fmt.Sprintf("VARCHAR2(%d)", t.Length), nil
	case schema.Text:
		return "CLOB", nil
	case schema.Boolean:
		return "NUMBER(1)", nil
	case schema.Date:
		return "DATE", nil
	case schema.Timestamp:
		return "TIMESTAMP", nil
	default:
		return "", &UnsupportedTypeError{Dialect: d.Name(), Table: table.Name, Column: col.Name, Type: t.Kind}
	}
}

func (d *OracleDialect) RenderIdentifier(kind IdentifierKind, table, column string) string {
	return ShortenIdentifier(strings.ToUpper(identifier(kind, table, column)), oracleIdentifierLimit)
}

func (d *OracleDialect) RenderSequences(table *schema.Table) []string {
	var stmts []string
	for _, col := range table.SerialColumns() {
		stmts = append(stmts, fmt.Sprintf("CREATE SEQUENCE %s START WITH 1 INCREMENT BY 1 NOCACHE",
			d.RenderIdentifier(Sequence, table.Name, col.Name)))
	}
	return stmts
}

func (d *OracleDialect) RenderCreateTable(table *schema.Table) (string, error) {
	return d.createTable(d, table, d.renderDefault)
}

func (d *OracleDialect) renderDefault(table *schema.Table, col *schema.Column) string {
	switch col.Type.Kind {
	case schema.Serial:
		return d.RenderIdentifier(Sequence, table.Name, col.Name) + ".NEXTVAL"
	case schema.Boolean:
		switch strings.ToLower(col.Default) {
		case "true":
			return "1"
		case "false":
			return "0"
		}
	}
	return col.Default
}

func (d *OracleDialect) RenderPrimaryKey(table *schema.Table) string {
	return d.primaryKey(d, table)
}

func (d *OracleDialect) RenderForeignKeys(table *schema.Table) []string {
	return d.foreignKeys(d, table)
}

func (d *OracleDialect) RenderIndexes(table *schema.Table) []string {
	return d.indexes(d, table)
}

func (d *OracleDialect) RenderComments(table *schema.Table) []string {
	return d.comments(table)
}

func (d *OracleDialect) RenderInsert(table *schema.Table, cols []*schema.Column, values []any) (string, error) {
	return d.insert(table, cols, values, func(col *schema.Column, v any) (string, error) {
		if b, ok := v.(bool); ok {
			if b {
				return "1", nil
			}
			return "0", nil
		}
		return literal(col, v)
	})
}

func (d *OracleDialect) DriverName() string {
	return "oracle"
}

// DefaultSchema is empty: the USER_* views already scope to the connected user.
func (d *OracleDialect) DefaultSchema() string {
	return ""
}

// The USER_* views ignore the owner; the dummy predicate consumes the bind
// parameter so every Catalog query has the same shape.
func (d *OracleDialect) TablesQuery() string {
	return `SELECT LOWER(TABLE_NAME) FROM USER_TABLES WHERE NVL(:1, 'x') IS NOT NULL ORDER BY TABLE_NAME`
}

func (d *OracleDialect) ColumnsQuery() string {
	return `
SELECT
    LOWER(t.TABLE_NAME),
    LOWER(t.COLUMN_NAME),
    t.DATA_TYPE,
    CASE WHEN t.NULLABLE = 'Y' THEN 'YES' ELSE 'NO' END
FROM USER_TAB_COLUMNS t
JOIN USER_TABLES u ON u.TABLE_NAME = t.TABLE_NAME
WHERE NVL(:1, 'x') IS NOT NULL
ORDER BY t.TABLE_NAME, t.COLUMN_ID`
}

func (d *OracleDialect) ForeignKeysQuery() string {
	return `
SELECT
    LOWER(c.TABLE_NAME),
    LOWER(cc.COLUMN_NAME),
    LOWER(r.TABLE_NAME) AS REF_TABLE,
    LOWER(rcc.COLUMN_NAME) AS REF_COLUMN
FROM USER_CONSTRAINTS c
JOIN USER_CONS_COLUMNS cc
    ON c.CONSTRAINT_NAME = cc.CONSTRAINT_NAME
    AND c.OWNER = cc.OWNER
JOIN USER_CONSTRAINTS r
    ON c.R_CONSTRAINT_NAME = r.CONSTRAINT_NAME
    AND c.R_OWNER = r.OWNER
JOIN USER_CONS_COLUMNS rcc
    ON r.CONSTRAINT_NAME = rcc.CONSTRAINT_NAME
    AND r.OWNER = rcc.OWNER
    AND cc.POSITION = rcc.POSITION
WHERE c.CONSTRAINT_TYPE = 'R'
AND NVL(:1, 'x') IS NOT NULL
ORDER BY c.TABLE_NAME, cc.COLUMN_NAME`
}
