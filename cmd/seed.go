package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"

	"github.com/oesnpg/dw-migrate/internal/dialect"
	"github.com/oesnpg/dw-migrate/internal/engine"
	"github.com/oesnpg/dw-migrate/internal/migration"
	"github.com/oesnpg/dw-migrate/internal/schema"
)

var (
	seedRows     int
	seedFactRows int
	seedValue    int64
	seedProgress bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate INSERT scripts with fake dimension and fact rows",
	Long: `Generate one seed script per configured dialect. Every dimension gets its
unknown member (surrogate key 0) followed by generated rows; the fact rows
reference those keys. Run it against freshly created tables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := engine.DefaultOptions()
		opts.Rows = cfg.Seed.Rows
		opts.FactRows = cfg.Seed.FactRows
		opts.Seed = cfg.Seed.Seed

		// Flag > Config > Default
		flags := cmd.Flags()
		if flags.Changed("rows") {
			opts.Rows = seedRows
		}
		if flags.Changed("fact-rows") {
			opts.FactRows = seedFactRows
		}
		if flags.Changed("seed") {
			opts.Seed = seedValue
		}

		return runSeed(cmd.OutOrStdout(), opts)
	},
}

func init() {
	seedCmd.Flags().IntVarP(&seedRows, "rows", "n", 0, "rows per dimension (default from config, 20)")
	seedCmd.Flags().IntVar(&seedFactRows, "fact-rows", 0, "fact rows (default from config, 100)")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 0, "random seed; the same seed gives the same script")
	seedCmd.Flags().BoolVar(&seedProgress, "progress", false, "show a progress bar")
	RootCmd.AddCommand(seedCmd)
}

func runSeed(w io.Writer, opts engine.Options) error {
	s, err := loadSchema()
	if err != nil {
		return err
	}
	gen := migration.New(cfg.OutputRoot(), migration.WithLogger(logger))

	for _, name := range cfg.Dialects {
		d, err := dialect.GetDialect(name)
		if err != nil {
			return fmt.Errorf("dialect selection: %w", err)
		}

		fmt.Fprintf(w, "Gerando seed para %s...\n", strings.ToUpper(d.Name()))
		start := time.Now()

		res, err := seedDialect(s, d, opts)
		if err != nil {
			return fmt.Errorf("seed rendering (%s): %w", d.Name(), err)
		}

		path, err := gen.SaveSeed(res.Statements, d.Name(), s.Name)
		if err != nil {
			return fmt.Errorf("file writing: %w", err)
		}

		writeSeedReport(w, res)
		fmt.Fprintf(w, "✅ Seed salvo: %s\n\n", path)
		logger.Info("seed generated", "dialect", d.Name(), "statements", len(res.Statements), "elapsed", time.Since(start))
	}
	return nil
}

func seedDialect(s *schema.Schema, d dialect.Dialect, opts engine.Options) (*engine.Result, error) {
	if !seedProgress {
		return engine.Seed(s, d, opts, nil)
	}

	progress := uiprogress.New()
	progress.Start()
	defer progress.Stop()

	bar := progress.AddBar(engine.TotalRows(s, opts)).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return "Processing: "
	})

	return engine.Seed(s, d, opts, func() {
		bar.Incr()
	})
}

func writeSeedReport(w io.Writer, res *engine.Result) {
	fmt.Fprintln(w, "\n📊 Summary Report (Dependency Order):")
	total := 0
	for i, r := range res.Tables {
		icon := "✓"
		if r.Status != "OK" {
			icon = "!"
		}
		fmt.Fprintf(w, "[%s] [%02d/%02d] %-20s : %d rows (Target: %d) - %s\n",
			icon, i+1, len(res.Tables), r.TableName, r.Actual, r.Target, r.Status)
		total += r.Actual
	}
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Total Statements: %d (generated rows: %d)\n", len(res.Statements), total)
}
