package migration

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oesnpg/dw-migrate/internal/dialect"
	"github.com/oesnpg/dw-migrate/internal/schema"
)

// TimestampLayout prefixes every generated file name (YYYYMMDD_HHMMSS).
const TimestampLayout = "20060102_150405"

// Generator writes migration scripts and schema documentation under OutputDir.
// It keeps no state between calls; Now is read once per file.
type Generator struct {
	OutputDir string
	Now       func() time.Time
	Logger    *slog.Logger
}

type Option func(*Generator)

// WithClock replaces time.Now, which names the output files.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.Now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.Logger = l }
}

func New(outputDir string, opts ...Option) *Generator {
	g := &Generator{
		OutputDir: outputDir,
		Now:       time.Now,
		Logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Section is one group of a migration. Every object a statement refers to is
// created in an earlier section.
type Section struct {
	Title      string
	Statements []string
}

// Plan renders the full schema with d, grouped into sequences, tables,
// primary keys, foreign keys, indexes and comments.
func Plan(s *schema.Schema, d dialect.Dialect) ([]Section, error) {
	var seqs, tables, pks, fks, idx, comments []string

	for _, t := range s.Tables {
		seqs = append(seqs, d.RenderSequences(t)...)

		create, err := d.RenderCreateTable(t)
		if err != nil {
			return nil, err
		}
		tables = append(tables, create)

		if pk := d.RenderPrimaryKey(t); pk != "" {
			pks = append(pks, pk)
		}
		if t.IsFact() {
			fks = append(fks, d.RenderForeignKeys(t)...)
		}
		idx = append(idx, d.RenderIndexes(t)...)
		comments = append(comments, d.RenderComments(t)...)
	}

	return []Section{
		{Title: "SEQUENCES", Statements: seqs},
		{Title: "TABLES", Statements: tables},
		{Title: "PRIMARY KEYS", Statements: pks},
		{Title: "FOREIGN KEYS", Statements: fks},
		{Title: "INDEXES", Statements: idx},
		{Title: "COMMENTS", Statements: comments},
	}, nil
}

// GenerateMigration returns the ordered DDL statements for s in dialect d,
// without terminators.
func GenerateMigration(s *schema.Schema, d dialect.Dialect) ([]string, error) {
	sections, err := Plan(s, d)
	if err != nil {
		return nil, err
	}
	var stmts []string
	for _, sec := range sections {
		stmts = append(stmts, sec.Statements...)
	}
	return stmts, nil
}

// Script is a rendered SQL file: a header block, the sections and a footer.
type Script struct {
	Name      string
	Dialect   string
	Schema    string
	Generated time.Time
	Sections  []Section
}

const banner = "-- ======================"

// Render opens every titled section with a banner, terminates each statement
// with ";\n" and separates statements with a blank line. Empty titled
// sections still get their banner.
func (sc *Script) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- Migration: %s\n", sc.Name)
	fmt.Fprintf(&b, "-- Database: %s\n", strings.ToUpper(sc.Dialect))
	fmt.Fprintf(&b, "-- Generated: %s\n", sc.Generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "-- Schema: %s\n", sc.Schema)
	b.WriteString("\n")

	count := 0
	for _, sec := range sc.Sections {
		if sec.Title != "" {
			fmt.Fprintf(&b, "%s\n-- %s\n%s\n\n", banner, sec.Title, banner)
		}
		for _, stmt := range sec.Statements {
			b.WriteString(stmt)
			b.WriteString(";\n\n")
		}
		count += len(sec.Statements)
	}

	fmt.Fprintf(&b, "-- %d statements\n", count)
	return b.String()
}

// FileName returns "<timestamp>_<action>_<schema>", e.g.
// 20240305_140709_create_dw_oesnpg.
func FileName(at time.Time, action, schemaName string) string {
	return fmt.Sprintf("%s_%s_%s", at.Format(TimestampLayout), action, schemaName)
}

// SaveMigration writes the sections returned by Plan to
// OutputDir/<dialect>/<timestamp>_create_<schema>.sql and returns the path.
// An existing file is never replaced.
func (g *Generator) SaveMigration(sections []Section, dialectName, schemaName string) (string, error) {
	return g.save(sections, dialectName, "create", schemaName)
}

// SaveSeed writes data statements to <timestamp>_seed_<schema>.sql under a
// single DATA section.
func (g *Generator) SaveSeed(statements []string, dialectName, schemaName string) (string, error) {
	return g.save([]Section{{Title: "DATA", Statements: statements}}, dialectName, "seed", schemaName)
}

func (g *Generator) save(sections []Section, dialectName, action, schemaName string) (string, error) {
	now := g.Now()
	name := FileName(now, action, schemaName)
	script := &Script{
		Name:      name,
		Dialect:   dialectName,
		Schema:    schemaName,
		Generated: now,
		Sections:  sections,
	}

	dir := filepath.Join(g.OutputDir, strings.ToLower(dialectName))
	path := filepath.Join(dir, name+".sql")
	if err := writeNew(dir, path, []byte(script.Render())); err != nil {
		return "", err
	}

	g.Logger.Info("script written", "path", path, "dialect", dialectName, "sections", len(sections))
	return path, nil
}

// writeNew creates dir and writes data to path, failing if path exists.
func writeNew(dir, path string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &FileWriteError{Path: dir, Err: err}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return &FileWriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	return nil
}

// writeFile creates dir and writes data to path, replacing any previous file.
func writeFile(dir, path string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &FileWriteError{Path: dir, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	return nil
}
