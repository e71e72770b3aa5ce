package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/oesnpg/dw-migrate/internal/config"
	"github.com/oesnpg/dw-migrate/internal/logging"
	"github.com/oesnpg/dw-migrate/internal/schema"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
)

var RootCmd = &cobra.Command{
	Use:   "dw-migrate",
	Short: "DDL migration generator for the OES-NPG data warehouse",
	Long: `
 ______        __       ___  _____ ____        _   _ ____   ____
|  _ \ \      / /      / _ \| ____/ ___|      | \ | |  _ \ / ___|
| | | \ \ /\ / /_____ | | | |  _| \___ \ _____|  \| | |_) | |  _
| |_| |\ V  V /_____| | |_| | |___ ___) |_____| |\  |  __/| |_| |
|____/  \_/\_/         \___/|_____|____/      |_| \_|_|    \____|

Star-schema migrations (PostgreSQL, Oracle) and schema documentation.
Without a subcommand it runs generate.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return fmt.Errorf("configuration: %w", err)
		}

		logger = logging.New(cmd.ErrOrStderr(), cfg.Logging.Level)
		if cfg.File != "" {
			logger.Debug("using config file", "path", cfg.File)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.OutOrStdout())
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌ Erro:", err)
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./dw-migrate.yaml)")
	flags.String("base-dir", "", "base directory (overrides BASE_DIR)")
	flags.String("output-dir", "", "output directory, relative to the base directory (overrides OUTPUT_DIR)")
	flags.String("schema-file", "", "YAML schema definition to use instead of the built-in warehouse")
	flags.String("log-level", "", "log level: debug, info, warn, error")
}

// loadSchema returns the schema every command works on: the YAML definition
// when one is configured, the built-in warehouse otherwise.
func loadSchema() (*schema.Schema, error) {
	var (
		s   *schema.Schema
		err error
	)
	if cfg.SchemaFile != "" {
		s, err = schema.LoadDefinition(cfg.SchemaFile)
	} else {
		s, err = schema.Warehouse()
	}
	if err != nil {
		return nil, fmt.Errorf("schema definition: %w", err)
	}

	logger.Debug("schema loaded", "name", s.Name, "tables", len(s.Tables), "file", cfg.SchemaFile)
	return s, nil
}
