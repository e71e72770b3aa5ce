package migration

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/oesnpg/dw-migrate/internal/schema"
)

// MarkdownFormatter writes the human-readable schema documentation.
type MarkdownFormatter struct {
	writer io.Writer
}

func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{writer: w}
}

// RenderMarkdown returns the documentation of s as a string.
func RenderMarkdown(s *schema.Schema, generatedAt time.Time) string {
	var b strings.Builder
	NewMarkdownFormatter(&b).Format(s, generatedAt)
	return b.String()
}

// Format writes every table of s: dimensions first, then the fact table with
// its foreign keys split from the remaining columns.
func (f *MarkdownFormatter) Format(s *schema.Schema, generatedAt time.Time) {
	dims := s.Dimensions()
	fact := s.Fact()

	f.line("# Data Warehouse OES-NPG - Documentação do Schema")
	f.line("")
	f.line("**Schema:** `%s`  ", s.Name)
	f.line("**Gerado em:** %s", generatedAt.Format("2006-01-02 15:04:05"))
	f.line("")
	f.line("## Visão Geral")
	f.line("")
	f.line("Este documento descreve o schema completo do Data Warehouse OES-NPG, incluindo todas as dimensões e a tabela fato.")
	f.line("")
	f.line("## Arquitetura")
	f.line("")
	f.line("O DW segue o modelo Star Schema:")
	f.line("- **%d Dimensões**: %s", len(dims), strings.Join(tableNames(dims), ", "))
	if fact != nil {
		f.line("- **1 Tabela Fato**: %s", fact.Name)
	}
	f.line("")

	f.line("## Dimensões")
	f.line("")
	for _, t := range dims {
		f.tableHeader(t)
		f.line("| Coluna | Tipo | Descrição |")
		f.line("|--------|------|-----------|")
		for _, c := range t.Columns {
			f.line("| %s | %s | %s |", c.Name, columnType(t, c), cell(c.Comment))
		}
		f.line("")
	}

	if fact != nil {
		f.line("## Tabela Fato")
		f.line("")
		f.tableHeader(fact)

		f.line("#### Chaves Estrangeiras")
		f.line("")
		f.line("| Coluna | Referência | Descrição |")
		f.line("|--------|------------|-----------|")
		for _, fk := range fact.ForeignKeys {
			f.line("| %s | %s.%s | %s |", fk.Column, fk.RefTable, fk.RefColumn, cell(fact.Column(fk.Column).Comment))
		}
		f.line("")

		f.line("#### Métricas e Atributos")
		f.line("")
		f.line("| Coluna | Tipo | Descrição |")
		f.line("|--------|------|-----------|")
		for _, c := range fact.Columns {
			if fact.ForeignKeyFor(c.Name) != nil {
				continue
			}
			f.line("| %s | %s | %s |", c.Name, columnType(fact, c), cell(c.Comment))
		}
		f.line("")
	}

	f.line("## Relacionamentos")
	f.line("")
	f.line("Cardinalidade 1:N (dimensão:fato), integridade referencial por foreign keys.")
	f.line("Cada dimensão reserva a chave surrogate %d para o membro \"%s\".", schema.UnknownKey, schema.UnknownLabel)
	f.line("")
	if fact != nil {
		for _, fk := range fact.ForeignKeys {
			f.line("- `%s.%s` → `%s.%s`", fact.Name, fk.Column, fk.RefTable, fk.RefColumn)
		}
		f.line("")
	}

	f.line("## Estratégia de Indexação")
	f.line("")
	f.line("### Índices Automáticos")
	f.line("")
	f.line("- Primary keys de todas as tabelas")
	if fact != nil {
		for _, fk := range fact.ForeignKeys {
			f.line("- `%s(%s)` (foreign key)", fact.Name, fk.Column)
		}
	}
	f.line("")
	f.line("### Índices Adicionais")
	f.line("")
	for _, t := range s.Tables {
		for _, idx := range t.Indexes {
			unique := ""
			if idx.Unique {
				unique = ", único"
			}
			f.line("- `%s`: `%s(%s)`%s", idx.Name, t.Name, strings.Join(idx.Columns, ", "), unique)
		}
	}
}

func (f *MarkdownFormatter) tableHeader(t *schema.Table) {
	f.line("### %s", t.Name)
	f.line("")
	if t.Comment != "" {
		f.line("**Descrição:** %s", t.Comment)
		f.line("")
	}
}

func (f *MarkdownFormatter) line(format string, args ...any) {
	_, _ = fmt.Fprintf(f.writer, format+"\n", args...)
}

// columnType is the semantic type followed by PK/UNIQUE/NOT NULL/DEFAULT.
func columnType(t *schema.Table, c *schema.Column) string {
	parts := []string{c.Type.String()}
	if c.Name == t.PrimaryKey {
		parts = append(parts, "PK")
	}
	if t.ForeignKeyFor(c.Name) != nil {
		parts = append(parts, "FK")
	}
	if c.Unique {
		parts = append(parts, "UNIQUE")
	}
	if !c.Nullable {
		parts = append(parts, "NOT NULL")
	}
	if c.Default != "" {
		parts = append(parts, "DEFAULT "+c.Default)
	}
	return strings.Join(parts, " ")
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func tableNames(tables []*schema.Table) []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}
