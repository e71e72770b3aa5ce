package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oesnpg/dw-migrate/internal/dialect"
	"github.com/oesnpg/dw-migrate/internal/migration"
	"github.com/oesnpg/dw-migrate/internal/schema"
)

var dumpDefinition string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate migration scripts for every configured dialect, then the documentation",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dumpDefinition != "" {
			return runDumpDefinition(cmd.OutOrStdout(), dumpDefinition)
		}
		return runGenerate(cmd.OutOrStdout())
	},
}

func init() {
	generateCmd.Flags().StringVar(&dumpDefinition, "dump-definition", "", "write the schema as a YAML definition to this path and exit")
	RootCmd.AddCommand(generateCmd)
}

// runGenerate writes one migration per dialect in cfg.Dialects, then the
// documentation. Files already written stay in place when a later step fails.
func runGenerate(w io.Writer) error {
	s, err := loadSchema()
	if err != nil {
		return err
	}
	gen := migration.New(cfg.OutputRoot(), migration.WithLogger(logger))

	fmt.Fprintln(w, "=== Sistema de Migrations DW OES-NPG ===")
	fmt.Fprintln(w)

	for _, name := range cfg.Dialects {
		d, err := dialect.GetDialect(name)
		if err != nil {
			return fmt.Errorf("dialect selection: %w", err)
		}

		fmt.Fprintf(w, "Gerando migration para %s...\n", strings.ToUpper(d.Name()))
		sections, err := migration.Plan(s, d)
		if err != nil {
			return fmt.Errorf("dialect rendering (%s): %w", d.Name(), err)
		}

		path, err := gen.SaveMigration(sections, d.Name(), s.Name)
		if err != nil {
			return fmt.Errorf("file writing: %w", err)
		}
		fmt.Fprintf(w, "✅ Migration salva: %s\n", path)
	}

	if err := runDocs(w, gen, s); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n=== Migrations geradas com sucesso! ===")
	return nil
}

func runDumpDefinition(w io.Writer, path string) error {
	s, err := loadSchema()
	if err != nil {
		return err
	}
	if err := schema.WriteDefinition(s, path); err != nil {
		return fmt.Errorf("file writing: %w", err)
	}
	fmt.Fprintf(w, "✅ Definição salva: %s\n", path)
	return nil
}
