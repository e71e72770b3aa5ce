package migration

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/oesnpg/dw-migrate/internal/schema"
)

const (
	DocsDir          = "docs"
	MarkdownFileName = "SCHEMA_DOCUMENTATION.md"
)

// SchemaDocument is the JSON form of a schema.
type SchemaDocument struct {
	Name   string          `json:"name"`
	Tables []TableDocument `json:"tables"`
}

type TableDocument struct {
	Name        string           `json:"name"`
	Type        schema.TableKind `json:"type"`
	Comment     string           `json:"comment"`
	PrimaryKey  string           `json:"primary_key"`
	Columns     []ColumnDocument `json:"columns"`
	ForeignKeys []ForeignKeyDoc  `json:"foreign_keys,omitempty"`
	Indexes     []IndexDocument  `json:"indexes,omitempty"`
}

type ColumnDocument struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Nullable   bool   `json:"nullable"`
	Comment    string `json:"comment"`
	Default    string `json:"default,omitempty"`
	Unique     bool   `json:"unique,omitempty"`
	PrimaryKey bool   `json:"primary_key,omitempty"`
	References string `json:"references,omitempty"`
}

type ForeignKeyDoc struct {
	Column    string `json:"column"`
	RefTable  string `json:"ref_table"`
	RefColumn string `json:"ref_column"`
}

type IndexDocument struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Unique  bool     `json:"unique,omitempty"`
}

// JSONFileName is schema_<name>.json.
func JSONFileName(schemaName string) string {
	return fmt.Sprintf("schema_%s.json", schemaName)
}

func NewSchemaDocument(s *schema.Schema) *SchemaDocument {
	doc := &SchemaDocument{Name: s.Name, Tables: make([]TableDocument, 0, len(s.Tables))}
	for _, t := range s.Tables {
		td := TableDocument{
			Name:       t.Name,
			Type:       t.Kind,
			Comment:    t.Comment,
			PrimaryKey: t.PrimaryKey,
			Columns:    make([]ColumnDocument, 0, len(t.Columns)),
		}
		for _, c := range t.Columns {
			cd := ColumnDocument{
				Name:       c.Name,
				Type:       c.Type.String(),
				Nullable:   c.Nullable,
				Comment:    c.Comment,
				Default:    c.Default,
				Unique:     c.Unique,
				PrimaryKey: c.Name == t.PrimaryKey,
			}
			if fk := t.ForeignKeyFor(c.Name); fk != nil {
				cd.References = fk.RefTable + "." + fk.RefColumn
			}
			td.Columns = append(td.Columns, cd)
		}
		for _, fk := range t.ForeignKeys {
			td.ForeignKeys = append(td.ForeignKeys, ForeignKeyDoc{Column: fk.Column, RefTable: fk.RefTable, RefColumn: fk.RefColumn})
		}
		for _, idx := range t.Indexes {
			td.Indexes = append(td.Indexes, IndexDocument{Name: idx.Name, Columns: idx.Columns, Unique: idx.Unique})
		}
		doc.Tables = append(doc.Tables, td)
	}
	return doc
}

// MarshalSchemaJSON returns the indented JSON document for s. Non-ASCII text
// (accents in comments) is kept as is.
func MarshalSchemaJSON(s *schema.Schema) ([]byte, error) {
	data, err := json.MarshalIndent(NewSchemaDocument(s), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling schema %s: %w", s.Name, err)
	}
	return append(data, '\n'), nil
}

// GenerateDocumentation writes OutputDir/docs/schema_<name>.json and
// OutputDir/docs/SCHEMA_DOCUMENTATION.md. Both come from the same schema value;
// existing documentation is replaced.
func (g *Generator) GenerateDocumentation(s *schema.Schema) (jsonPath, mdPath string, err error) {
	dir := filepath.Join(g.OutputDir, DocsDir)

	data, err := MarshalSchemaJSON(s)
	if err != nil {
		return "", "", err
	}
	jsonPath = filepath.Join(dir, JSONFileName(s.Name))
	if err := writeFile(dir, jsonPath, data); err != nil {
		return "", "", err
	}

	mdPath = filepath.Join(dir, MarkdownFileName)
	if err := writeFile(dir, mdPath, []byte(RenderMarkdown(s, g.Now()))); err != nil {
		return "", "", err
	}

	g.Logger.Info("documentation written", "json", jsonPath, "markdown", mdPath, "tables", len(s.Tables))
	return jsonPath, mdPath, nil
}
