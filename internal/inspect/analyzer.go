package inspect

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/oesnpg/dw-migrate/internal/dialect"
)

// LiveColumn is a column as the database catalog reports it.
type LiveColumn struct {
	Name     string
	DataType string
	Nullable bool
}

// LiveForeignKey is a foreign key as the database catalog reports it.
type LiveForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

type LiveTable struct {
	Name        string
	Columns     []LiveColumn
	ForeignKeys []LiveForeignKey
}

// Column returns the named column, matching case-insensitively.
func (t *LiveTable) Column(name string) (LiveColumn, bool) {
	for _, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return LiveColumn{}, false
}

// LiveSchema is what a connected database currently holds. Table names are
// stored lower case so Oracle's upper-case catalog compares directly.
type LiveSchema struct {
	Owner  string
	Tables map[string]*LiveTable
}

// TableNames returns the live table names, sorted.
func (s *LiveSchema) TableNames() []string {
	names := make([]string, 0, len(s.Tables))
	for n := range s.Tables {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Analyze reads tables, columns and foreign keys of owner through the catalog
// queries of c. An empty owner falls back to the catalog default.
func Analyze(ctx context.Context, db *sql.DB, c dialect.Catalog, owner string) (*LiveSchema, error) {
	if owner == "" {
		owner = c.DefaultSchema()
	}
	live := &LiveSchema{Owner: owner, Tables: make(map[string]*LiveTable)}

	// --- Tables ---
	rows, err := db.QueryContext(ctx, c.TablesQuery(), owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		key := strings.ToLower(name)
		live.Tables[key] = &LiveTable{Name: key}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}

	// --- Columns ---
	colRows, err := db.QueryContext(ctx, c.ColumnsQuery(), owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer colRows.Close()

	for colRows.Next() {
		var tName, cName, dType, isNull sql.NullString
		if err := colRows.Scan(&tName, &cName, &dType, &isNull); err != nil {
			return nil, fmt.Errorf("failed to scan column (table: %s): %w", tName.String, err)
		}
		if !tName.Valid || !cName.Valid {
			continue
		}
		if t, ok := live.Tables[strings.ToLower(tName.String)]; ok {
			t.Columns = append(t.Columns, LiveColumn{
				Name:     strings.ToLower(cName.String),
				DataType: strings.ToLower(dType.String),
				Nullable: strings.EqualFold(isNull.String, "YES"),
			})
		}
	}
	if err := colRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %w", err)
	}

	// --- Foreign Keys ---
	fkRows, err := db.QueryContext(ctx, c.ForeignKeysQuery(), owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query foreign keys: %w", err)
	}
	defer fkRows.Close()

	for fkRows.Next() {
		var tName, cName, rTable, rCol sql.NullString
		if err := fkRows.Scan(&tName, &cName, &rTable, &rCol); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key: %w", err)
		}
		if !tName.Valid || !rTable.Valid {
			continue
		}
		if t, ok := live.Tables[strings.ToLower(tName.String)]; ok {
			t.ForeignKeys = append(t.ForeignKeys, LiveForeignKey{
				Column:    strings.ToLower(cName.String),
				RefTable:  strings.ToLower(rTable.String),
				RefColumn: strings.ToLower(rCol.String),
			})
		}
	}
	if err := fkRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating foreign keys: %w", err)
	}

	return live, nil
}
