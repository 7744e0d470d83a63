package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/punsmith/internal/config"
	"github.com/heartmarshall/punsmith/internal/service/dataset"
)

type datasetOptions struct {
	workers int
	output  string
	formats string
	themes  string
	storeDB bool
}

// apply copies flags the user set over the loaded configuration.
func (o *datasetOptions) apply(cmd *cobra.Command, cfg *config.DatasetConfig) {
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("output") {
		cfg.OutputBase = o.output
	}
	if flags.Changed("formats") {
		cfg.FormatsRaw = o.formats
		cfg.Formats = config.ParseList(o.formats)
	}
	if flags.Changed("themes") {
		cfg.ThemesPath = o.themes
	}
	if flags.Changed("store-db") {
		cfg.StoreDB = o.storeDB
	}
}

func newDatasetCmd() *cobra.Command {
	opts := &datasetOptions{}

	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Generate riddles for a theme list and export them",
		Long: `Runs the generator once per theme and writes the (theme, question, answer)
records as CSV, JSON and a numbered text report, and optionally to Postgres.
Themes come from --themes (one per line) or the built-in list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDataset(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 4, "parallel workers")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "puns_dataset", "output path without extension")
	cmd.Flags().StringVar(&opts.formats, "formats", "csv,json,txt", "comma-separated output formats")
	cmd.Flags().StringVar(&opts.themes, "themes", "", "theme list file, one theme per line")
	cmd.Flags().BoolVar(&opts.storeDB, "store-db", false, "also store records in Postgres")

	cmd.AddCommand(newDatasetShowCmd())
	cmd.AddCommand(newDatasetDeleteCmd())

	return cmd
}

func runDataset(cmd *cobra.Command, opts *datasetOptions) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	cfg := a.Config()
	opts.apply(cmd, &cfg.Dataset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	themes, err := a.Themes()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	sinks, cleanup, err := a.DatasetSinks(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	gen := a.NewDatasetGenerator()
	report, err := gen.Run(ctx, themes)
	if err != nil {
		return err
	}
	if err := gen.Publish(ctx, report, sinks...); err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), report)
	return nil
}

func printReport(w io.Writer, r dataset.Report) {
	fmt.Fprintf(w, "Total theme words: %d\n", r.Total)
	fmt.Fprintf(w, "Successful puns: %d\n", len(r.Records))
	fmt.Fprintf(w, "Failed themes: %d\n", len(r.Failed))
	if len(r.Failed) > 0 {
		fmt.Fprintf(w, "  %s\n", strings.Join(r.Failed, ", "))
	}
	fmt.Fprintf(w, "Success rate: %.1f%%\n", r.SuccessRate()*100)
}
