package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/punsmith/internal/adapter/postgres"
	"github.com/heartmarshall/punsmith/internal/app"
	"github.com/heartmarshall/punsmith/internal/config"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Manage the Postgres schema for stored datasets",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) == 1 {
				action = args[0]
			}
			return runMigrate(cmd, action)
		},
	}
	return cmd
}

func runMigrate(cmd *cobra.Command, action string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("migrate: database dsn is not configured (set DATABASE_DSN)")
	}
	logger := app.NewLogger(cfg.Log)

	ctx := cmd.Context()
	m, err := postgres.NewMigrator(ctx, cfg.Database.DSN, logger)
	if err != nil {
		return err
	}
	defer m.Close()

	switch action {
	case "down":
		return m.Down(ctx)
	case "status":
		states, err := m.Status(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "VERSION\tNAME\tAPPLIED")
		for _, s := range states {
			applied := "pending"
			if s.Applied {
				applied = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, s.Name, applied)
		}
		return tw.Flush()
	default:
		return m.Up(ctx)
	}
}
