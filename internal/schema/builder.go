package schema

import (
	"fmt"
	"regexp"
)

var identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidIdentifier reports whether name is an acceptable table, column or
// index name.
func ValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// Builder collects table definitions and validates them as a whole. It has no
// side effects; Build either returns a consistent Schema or a
// *SchemaDefinitionError listing every problem found.
type Builder struct {
	name   string
	tables []*Table
}

func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// AddTable appends a table. Declaration order is kept unless the foreign keys
// require otherwise.
func (b *Builder) AddTable(t *Table) *Builder {
	b.tables = append(b.tables, t)
	return b
}

func (b *Builder) Build() (*Schema, error) {
	var problems []string
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if b.name == "" {
		fail("schema name is empty")
	} else if !ValidIdentifier(b.name) {
		fail("schema name %q: invalid identifier", b.name)
	}

	byName := make(map[string]*Table, len(b.tables))
	facts := 0
	for _, t := range b.tables {
		if !ValidIdentifier(t.Name) {
			fail("table %q: invalid identifier", t.Name)
		}
		if _, dup := byName[t.Name]; dup {
			fail("table %q: declared more than once", t.Name)
			continue
		}
		byName[t.Name] = t

		switch t.Kind {
		case KindFact:
			facts++
		case KindDimension:
		default:
			fail("table %q: unknown kind %q", t.Name, t.Kind)
		}
		validateColumns(t, fail)
	}

	if facts != 1 {
		fail("expected exactly one fact table, found %d", facts)
	}

	// Declared indexes share a namespace with the per-column indexes rendered
	// for the fact foreign keys (<fact>_<column>).
	fkIndexes := make(map[string]string)
	for _, t := range b.tables {
		if t.Kind == KindFact {
			for _, fk := range t.ForeignKeys {
				fkIndexes[t.Name+"_"+fk.Column] = fmt.Sprintf("%s(%s)", t.Name, fk.Column)
			}
		}
	}

	indexNames := make(map[string]string)
	for _, t := range b.tables {
		validateKeys(t, byName, fail)
		validateIndexes(t, indexNames, fkIndexes, fail)
	}

	if len(problems) > 0 {
		return nil, &SchemaDefinitionError{Schema: b.name, Problems: problems}
	}

	// Resolve referenced columns only after every target is known to exist.
	for _, t := range b.tables {
		for _, fk := range t.ForeignKeys {
			fk.RefColumn = byName[fk.RefTable].PrimaryKey
		}
	}

	ordered, err := SortByDependencies(b.tables)
	if err != nil {
		return nil, &SchemaDefinitionError{Schema: b.name, Problems: []string{err.Error()}}
	}

	return &Schema{Name: b.name, Tables: ordered}, nil
}

func validateColumns(t *Table, fail func(string, ...any)) {
	if len(t.Columns) == 0 {
		fail("table %q: no columns", t.Name)
	}

	seen := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		if !ValidIdentifier(c.Name) {
			fail("column %s.%s: invalid identifier", t.Name, c.Name)
		}
		if seen[c.Name] {
			fail("column %s.%s: declared more than once", t.Name, c.Name)
		}
		seen[c.Name] = true

		switch {
		case !c.Type.Kind.Valid():
			fail("column %s.%s: unknown type %q", t.Name, c.Name, c.Type.Kind)
		case c.Type.Kind == Serial && c.Nullable:
			fail("column %s.%s: SERIAL column cannot be nullable", t.Name, c.Name)
		case c.Type.Kind == Varchar && c.Type.Length <= 0:
			fail("column %s.%s: VARCHAR length must be positive", t.Name, c.Name)
		case c.Type.Kind == Decimal && (c.Type.Precision <= 0 || c.Type.Scale < 0 || c.Type.Scale > c.Type.Precision):
			fail("column %s.%s: invalid DECIMAL(%d,%d)", t.Name, c.Name, c.Type.Precision, c.Type.Scale)
		}
	}
}

func validateKeys(t *Table, byName map[string]*Table, fail func(string, ...any)) {
	if t.PrimaryKey == "" {
		fail("table %q: no primary key", t.Name)
	} else if pk := t.Column(t.PrimaryKey); pk == nil {
		fail("table %q: primary key column %q does not exist", t.Name, t.PrimaryKey)
	} else if pk.Nullable {
		fail("table %q: primary key column %q is nullable", t.Name, t.PrimaryKey)
	}

	if len(t.ForeignKeys) > 0 && t.Kind != KindFact {
		fail("table %q: only the fact table may declare foreign keys", t.Name)
	}

	seen := make(map[string]bool, len(t.ForeignKeys))
	for _, fk := range t.ForeignKeys {
		if seen[fk.Column] {
			fail("table %q: column %q has more than one foreign key", t.Name, fk.Column)
		}
		seen[fk.Column] = true

		if !t.HasColumn(fk.Column) {
			fail("table %q: foreign key column %q does not exist", t.Name, fk.Column)
		}
		target, ok := byName[fk.RefTable]
		if !ok {
			fail("table %q: foreign key %q references unknown table %q", t.Name, fk.Column, fk.RefTable)
			continue
		}
		if target.Kind != KindDimension {
			fail("table %q: foreign key %q must reference a dimension, %q is a %s", t.Name, fk.Column, fk.RefTable, target.Kind)
		}
		if fk.RefColumn != "" && fk.RefColumn != target.PrimaryKey {
			fail("table %q: foreign key %q must reference %s.%s, not %s", t.Name, fk.Column, target.Name, target.PrimaryKey, fk.RefColumn)
		}
	}
}

// validateIndexes checks declared indexes. Index names share one namespace
// across the schema in both target engines, so seen spans all tables.
func validateIndexes(t *Table, seen, fkIndexes map[string]string, fail func(string, ...any)) {
	for _, idx := range t.Indexes {
		if !ValidIdentifier(idx.Name) {
			fail("index %s.%s: invalid identifier", t.Name, idx.Name)
		}
		if on, clash := fkIndexes[idx.Name]; clash {
			fail("index %s.%s: name already used by the foreign key index on %s", t.Name, idx.Name, on)
		}
		if owner, dup := seen[idx.Name]; dup {
			fail("index %s.%s: name already used on table %q", t.Name, idx.Name, owner)
		}
		seen[idx.Name] = t.Name

		if len(idx.Columns) == 0 {
			fail("index %s.%s: no columns", t.Name, idx.Name)
		}
		for _, c := range idx.Columns {
			if !t.HasColumn(c) {
				fail("index %s.%s: column %q does not exist", t.Name, idx.Name, c)
			}
		}
	}
}
