package cmd

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oesnpg/dw-migrate/internal/dialect"
	"github.com/oesnpg/dw-migrate/internal/inspect"
)

// errDrift makes check exit non-zero after the report has been printed.
var errDrift = errors.New("live database differs from the schema")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare the active database with the schema (read-only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSchema()
		if err != nil {
			return err
		}

		dbCfg, err := cfg.ActiveDatabase()
		if err != nil {
			return err
		}
		catalog, err := dialect.GetCatalog(dbCfg.Driver)
		if err != nil {
			return err
		}

		db, err := sql.Open(catalog.DriverName(), dbCfg.DSN)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer db.Close()

		ctx := cmd.Context()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "🦅 Connected to %s (%s)\n", dbCfg.Name, catalog.DriverName())

		logger.Info("analyzing schema", "database", dbCfg.Name, "owner", dbCfg.Owner)
		live, err := inspect.Analyze(ctx, db, catalog, dbCfg.Owner)
		if err != nil {
			return err
		}

		report := inspect.Diff(s, live)
		report.Write(w)
		if !report.Clean() {
			return errDrift
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
