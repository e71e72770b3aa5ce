package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/oesnpg/dw-migrate/internal/schema"
)

// Report lists how a live database differs from the expected schema.
type Report struct {
	MissingTables      []string
	ExtraTables        []string
	MissingColumns     []string // table.column
	NullabilityChanged []string // table.column
	MissingForeignKeys []string // table.column -> ref_table.ref_column
}

// Clean reports whether the live database matches the schema.
func (r *Report) Clean() bool {
	return len(r.MissingTables) == 0 && len(r.ExtraTables) == 0 && len(r.MissingColumns) == 0 &&
		len(r.NullabilityChanged) == 0 && len(r.MissingForeignKeys) == 0
}

// Diff compares expected with live. Extra columns and foreign keys on the
// live side are tolerated; extra tables are reported.
func Diff(expected *schema.Schema, live *LiveSchema) *Report {
	r := &Report{}
	known := make(map[string]bool, len(expected.Tables))

	for _, t := range expected.Tables {
		known[t.Name] = true
		lt, ok := live.Tables[t.Name]
		if !ok {
			r.MissingTables = append(r.MissingTables, t.Name)
			continue
		}

		for _, c := range t.Columns {
			lc, ok := lt.Column(c.Name)
			if !ok {
				r.MissingColumns = append(r.MissingColumns, t.Name+"."+c.Name)
				continue
			}
			if lc.Nullable != c.Nullable {
				r.NullabilityChanged = append(r.NullabilityChanged, t.Name+"."+c.Name)
			}
		}

		for _, fk := range t.ForeignKeys {
			if !hasForeignKey(lt, fk) {
				r.MissingForeignKeys = append(r.MissingForeignKeys,
					fmt.Sprintf("%s.%s -> %s.%s", t.Name, fk.Column, fk.RefTable, fk.RefColumn))
			}
		}
	}

	for _, name := range live.TableNames() {
		if !known[name] {
			r.ExtraTables = append(r.ExtraTables, name)
		}
	}
	return r
}

func hasForeignKey(lt *LiveTable, fk *schema.ForeignKey) bool {
	for _, lfk := range lt.ForeignKeys {
		if strings.EqualFold(lfk.Column, fk.Column) &&
			strings.EqualFold(lfk.RefTable, fk.RefTable) &&
			strings.EqualFold(lfk.RefColumn, fk.RefColumn) {
			return true
		}
	}
	return false
}

// Write prints the report in the same plain layout as the command output.
func (r *Report) Write(w io.Writer) {
	if r.Clean() {
		fmt.Fprintln(w, "✅ Nenhuma divergência encontrada")
		return
	}
	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(w, "%s (%d):\n", title, len(items))
		for _, it := range items {
			fmt.Fprintf(w, "  - %s\n", it)
		}
	}
	section("Tabelas ausentes", r.MissingTables)
	section("Colunas ausentes", r.MissingColumns)
	section("Nulabilidade divergente", r.NullabilityChanged)
	section("Foreign keys ausentes", r.MissingForeignKeys)
	section("Tabelas não previstas", r.ExtraTables)
}
