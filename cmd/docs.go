package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/oesnpg/dw-migrate/internal/migration"
	"github.com/oesnpg/dw-migrate/internal/schema"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate only the JSON and Markdown schema documentation",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSchema()
		if err != nil {
			return err
		}
		return runDocs(cmd.OutOrStdout(), migration.New(cfg.OutputRoot(), migration.WithLogger(logger)), s)
	},
}

func init() {
	RootCmd.AddCommand(docsCmd)
}

func runDocs(w io.Writer, gen *migration.Generator, s *schema.Schema) error {
	fmt.Fprintln(w, "\nGerando documentação do schema...")
	jsonPath, mdPath, err := gen.GenerateDocumentation(s)
	if err != nil {
		return fmt.Errorf("documentation: %w", err)
	}
	fmt.Fprintf(w, "✅ Documentação salva em: %s, %s\n", jsonPath, mdPath)
	return nil
}
