package schema

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Definition is the declarative, on-disk form of a Schema.
type Definition struct {
	Name   string            `yaml:"name"`
	Tables []TableDefinition `yaml:"tables"`
}

type TableDefinition struct {
	Name        string                 `yaml:"name"`
	Kind        TableKind              `yaml:"kind"`
	Comment     string                 `yaml:"comment,omitempty"`
	PrimaryKey  string                 `yaml:"primary_key"`
	Columns     []ColumnDefinition     `yaml:"columns"`
	ForeignKeys []ForeignKeyDefinition `yaml:"foreign_keys,omitempty"`
	Indexes     []IndexDefinition      `yaml:"indexes,omitempty"`
}

type ColumnDefinition struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable,omitempty"`
	Default  string `yaml:"default,omitempty"`
	Unique   bool   `yaml:"unique,omitempty"`
	Comment  string `yaml:"comment,omitempty"`
}

type ForeignKeyDefinition struct {
	Column     string `yaml:"column"`
	References string `yaml:"references"`
}

type IndexDefinition struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
	Unique  bool     `yaml:"unique,omitempty"`
}

// LoadDefinition reads a YAML schema definition and builds it.
func LoadDefinition(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema definition: %w", err)
	}
	return ParseDefinition(data)
}

// ParseDefinition decodes YAML and runs it through the Builder, so a file gets
// exactly the same validation as the built-in warehouse.
func ParseDefinition(data []byte) (*Schema, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing schema definition: %w", err)
	}

	var problems []string
	b := NewBuilder(def.Name)
	for _, td := range def.Tables {
		t := &Table{
			Name:       td.Name,
			Kind:       td.Kind,
			Comment:    td.Comment,
			PrimaryKey: td.PrimaryKey,
		}
		for _, cd := range td.Columns {
			typ, err := ParseType(cd.Type)
			if err != nil {
				problems = append(problems, fmt.Sprintf("column %s.%s: %v", td.Name, cd.Name, err))
				continue
			}
			t.Columns = append(t.Columns, &Column{
				Name:     cd.Name,
				Type:     typ,
				Nullable: cd.Nullable,
				Default:  cd.Default,
				Unique:   cd.Unique,
				Comment:  cd.Comment,
			})
		}
		for _, fd := range td.ForeignKeys {
			t.ForeignKeys = append(t.ForeignKeys, &ForeignKey{Column: fd.Column, RefTable: fd.References})
		}
		for _, id := range td.Indexes {
			t.Indexes = append(t.Indexes, &Index{Name: id.Name, Columns: id.Columns, Unique: id.Unique})
		}
		b.AddTable(t)
	}

	if len(problems) > 0 {
		return nil, &SchemaDefinitionError{Schema: def.Name, Problems: problems}
	}
	return b.Build()
}

// ToDefinition converts a Schema back into its declarative form.
func ToDefinition(s *Schema) *Definition {
	def := &Definition{Name: s.Name}
	for _, t := range s.Tables {
		td := TableDefinition{
			Name:       t.Name,
			Kind:       t.Kind,
			Comment:    t.Comment,
			PrimaryKey: t.PrimaryKey,
		}
		for _, c := range t.Columns {
			td.Columns = append(td.Columns, ColumnDefinition{
				Name:     c.Name,
				Type:     c.Type.String(),
				Nullable: c.Nullable,
				Default:  c.Default,
				Unique:   c.Unique,
				Comment:  c.Comment,
			})
		}
		for _, fk := range t.ForeignKeys {
			td.ForeignKeys = append(td.ForeignKeys, ForeignKeyDefinition{Column: fk.Column, References: fk.RefTable})
		}
		for _, idx := range t.Indexes {
			td.Indexes = append(td.Indexes, IndexDefinition{Name: idx.Name, Columns: idx.Columns, Unique: idx.Unique})
		}
		def.Tables = append(def.Tables, td)
	}
	return def
}

// WriteDefinition writes s as YAML to path, creating parent directories.
func WriteDefinition(s *Schema, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data, err := yaml.Marshal(ToDefinition(s))
	if err != nil {
		return fmt.Errorf("marshaling schema definition: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
