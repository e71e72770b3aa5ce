package schema

// TableKind separates the analysis axes from the central fact table.
type TableKind string

const (
	KindDimension TableKind = "dimension"
	KindFact      TableKind = "fact"
)

type Table struct {
	Name        string
	Kind        TableKind
	Comment     string
	Columns     []*Column
	PrimaryKey  string
	ForeignKeys []*ForeignKey
	Indexes     []*Index
}

type Column struct {
	Name     string
	Type     Type
	Nullable bool
	Default  string // literal or expression, rendered verbatim ("" = none)
	Unique   bool
	Comment  string
}

type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string // filled from the referenced table's primary key by Build
}

// Index is an additional, declared index. Name is the logical suffix; the
// dialect turns it into the final identifier.
type Index struct {
	Name    string
	Columns []string
	Unique  bool
}

// Schema is the complete warehouse model. Tables are in dependency order:
// dimensions first, the fact table last.
type Schema struct {
	Name   string
	Tables []*Table
}

// Column returns the named column or nil.
func (t *Table) Column(name string) *Column {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (t *Table) HasColumn(name string) bool {
	return t.Column(name) != nil
}

func (t *Table) IsFact() bool {
	return t.Kind == KindFact
}

// SerialColumns returns the auto-increment columns in declaration order.
func (t *Table) SerialColumns() []*Column {
	var cols []*Column
	for _, c := range t.Columns {
		if c.Type.Kind == Serial {
			cols = append(cols, c)
		}
	}
	return cols
}

// ForeignKeyFor returns the foreign key declared on column, if any.
func (t *Table) ForeignKeyFor(column string) *ForeignKey {
	for _, fk := range t.ForeignKeys {
		if fk.Column == column {
			return fk
		}
	}
	return nil
}

// Table returns the named table or nil.
func (s *Schema) Table(name string) *Table {
	for _, t := range s.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

func (s *Schema) Dimensions() []*Table {
	var dims []*Table
	for _, t := range s.Tables {
		if t.Kind == KindDimension {
			dims = append(dims, t)
		}
	}
	return dims
}

// Fact returns the fact table. A built Schema always has exactly one.
func (s *Schema) Fact() *Table {
	for _, t := range s.Tables {
		if t.IsFact() {
			return t
		}
	}
	return nil
}
