package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/punsmith/internal/app"
	"github.com/heartmarshall/punsmith/internal/config"
	"github.com/heartmarshall/punsmith/internal/domain"
)

type showOptions struct {
	run   string
	theme string
	id    string
	limit int
}

// newDatasetShowCmd lists riddles stored by `dataset --store-db`.
func newDatasetShowCmd() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show stored riddles of a run, a theme or a single record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDatasetShow(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.run, "run", "", "run ID")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme word, newest first")
	cmd.Flags().StringVar(&opts.id, "id", "", "record ID")
	cmd.Flags().IntVar(&opts.limit, "limit", 20, "maximum records for --theme (0 for all)")
	cmd.MarkFlagsMutuallyExclusive("run", "theme", "id")
	cmd.MarkFlagsOneRequired("run", "theme", "id")

	return cmd
}

func newDatasetDeleteCmd() *cobra.Command {
	var run string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete every stored riddle of a run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runID, err := parseID("run", run)
			if err != nil {
				return err
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			repo, closeRepo, err := app.OpenPunRepo(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer closeRepo()

			n, err := repo.DeleteRun(cmd.Context(), runID)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d records of run %s\n", n, runID)
			return err
		},
	}

	cmd.Flags().StringVar(&run, "run", "", "run ID")
	_ = cmd.MarkFlagRequired("run")

	return cmd
}

func runDatasetShow(cmd *cobra.Command, opts *showOptions) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	repo, closeRepo, err := app.OpenPunRepo(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer closeRepo()

	var records []domain.PunRecord
	switch {
	case opts.id != "":
		id, err := parseID("id", opts.id)
		if err != nil {
			return err
		}
		rec, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		records = []domain.PunRecord{rec}
	case opts.run != "":
		runID, err := parseID("run", opts.run)
		if err != nil {
			return err
		}
		if records, err = repo.ListByRun(ctx, runID); err != nil {
			return err
		}
	default:
		if records, err = repo.ListByTheme(ctx, opts.theme, opts.limit); err != nil {
			return err
		}
	}

	return printRecords(cmd.OutOrStdout(), records)
}

func parseID(flag, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("--%s: %w", flag, domain.NewValidationError(flag, "must be a UUID"))
	}
	return id, nil
}

func printRecords(w io.Writer, records []domain.PunRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No stored riddles.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "THEME\tQUESTION\tANSWER\tRUN")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Theme, r.Question, r.Answer, r.RunID)
	}
	return tw.Flush()
}
