package engine

import (
	"fmt"
	"time"

	"github.com/oesnpg/dw-migrate/internal/dialect"
	"github.com/oesnpg/dw-migrate/internal/schema"
)

// Options controls a seed run.
type Options struct {
	Rows     int // per dimension, unknown member not included
	FactRows int
	Seed     int64
	From     time.Time
	To       time.Time
}

// DefaultOptions seeds 20 rows per dimension and 100 facts dated 2015-2024.
func DefaultOptions() Options {
	return Options{
		Rows:     20,
		FactRows: 100,
		Seed:     42,
		From:     time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// TableResult reports how many rows a table received.
type TableResult struct {
	TableName string
	Target    int
	Actual    int
	Status    string
}

type Result struct {
	Statements []string
	Tables     []TableResult
}

// TotalRows is the number of INSERT statements Seed renders for s.
func TotalRows(s *schema.Schema, opts Options) int {
	return len(s.Dimensions())*(opts.Rows+1) + opts.FactRows
}

// Seed renders INSERT statements for s in dialect d: the unknown member and
// opts.Rows generated rows for every dimension, then opts.FactRows facts that
// reference them. Surrogate keys are left to SERIAL columns and sequences, so
// the script expects freshly created tables where keys start at 1.
// onProgress is called once per rendered row.
func Seed(s *schema.Schema, d dialect.Dialect, opts Options, onProgress func()) (*Result, error) {
	if opts.Rows < 0 || opts.FactRows < 0 {
		return nil, fmt.Errorf("seed row counts must not be negative (rows=%d, fact_rows=%d)", opts.Rows, opts.FactRows)
	}
	if !opts.To.After(opts.From) {
		return nil, fmt.Errorf("seed date range is empty (%s to %s)", opts.From.Format("2006-01-02"), opts.To.Format("2006-01-02"))
	}

	g := NewGenerator(opts.Seed, opts.From, opts.To)
	res := &Result{}
	// Highest surrogate key generated per dimension.
	keyPool := make(map[string]int)

	for _, t := range s.Dimensions() {
		stmt, err := d.RenderInsert(t, t.Columns, schema.UnknownMember(t))
		if err != nil {
			return nil, err
		}
		res.Statements = append(res.Statements, stmt)
		if onProgress != nil {
			onProgress()
		}

		inserted, err := g.fillTable(t, d, opts.Rows, nil, res, onProgress)
		if err != nil {
			return nil, err
		}
		keyPool[t.Name] = inserted
		res.Tables = append(res.Tables, tableResult(t.Name, opts.Rows, inserted))
	}

	if fact := s.Fact(); fact != nil {
		inserted, err := g.fillTable(fact, d, opts.FactRows, keyPool, res, onProgress)
		if err != nil {
			return nil, err
		}
		res.Tables = append(res.Tables, tableResult(fact.Name, opts.FactRows, inserted))
	}

	return res, nil
}

// fillTable renders up to count rows for t, skipping rows that would repeat a
// UNIQUE value, including one held by the unknown member. Foreign keys draw from keyPool, unknown member included.
func (g *Generator) fillTable(t *schema.Table, d dialect.Dialect, count int, keyPool map[string]int, res *Result, onProgress func()) (int, error) {
	var insertCols []*schema.Column
	for _, c := range t.Columns {
		if c.Type.Kind != schema.Serial {
			insertCols = append(insertCols, c)
		}
	}

	usedUniqueValues := make(map[string]map[any]bool)
	for _, c := range insertCols {
		if c.Unique {
			usedUniqueValues[c.Name] = make(map[any]bool)
		}
	}
	// The unknown member is already in every dimension.
	if !t.IsFact() {
		unknown := schema.UnknownMember(t)
		for i, c := range t.Columns {
			if used, ok := usedUniqueValues[c.Name]; ok && unknown[i] != nil {
				used[unknown[i]] = true
			}
		}
	}

	inserted, attempts := 0, 0
	for inserted < count && attempts < count*10 {
		attempts++
		values := g.row(t, insertCols, keyPool)

		skipRow := false
		for i, c := range insertCols {
			if c.Unique && values[i] != nil && usedUniqueValues[c.Name][values[i]] {
				skipRow = true
				break
			}
		}
		if skipRow {
			continue
		}
		for i, c := range insertCols {
			if c.Unique && values[i] != nil {
				usedUniqueValues[c.Name][values[i]] = true
			}
		}

		stmt, err := d.RenderInsert(t, insertCols, values)
		if err != nil {
			return inserted, err
		}
		res.Statements = append(res.Statements, stmt)
		inserted++
		if onProgress != nil {
			onProgress()
		}
	}
	return inserted, nil
}

func (g *Generator) row(t *schema.Table, cols []*schema.Column, keyPool map[string]int) []any {
	ctx := g.newRow()
	values := make([]any, len(cols))
	for i, c := range cols {
		if fk := t.ForeignKeyFor(c.Name); fk != nil {
			values[i] = g.faker.Number(schema.UnknownKey, keyPool[fk.RefTable])
			continue
		}
		values[i] = g.Value(t, c, ctx)
	}
	return values
}

func tableResult(name string, target, actual int) TableResult {
	status := "OK"
	if actual < target {
		status = fmt.Sprintf("PARTIAL: %d/%d", actual, target)
	}
	return TableResult{TableName: name, Target: target, Actual: actual, Status: status}
}
