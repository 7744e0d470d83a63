// Package cmd provides the CLI commands for punsmith.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/punsmith/internal/app"
)

// configPath is the --config flag shared by every command.
var configPath string

// NewRootCmd creates the root command. With arguments it generates a
// riddle for the theme they spell; without, an untargeted one.
func NewRootCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "punsmith [theme]",
		Short: "Generate compound-noun homophone puns",
		Long: `punsmith finds a compound noun whose first word sounds like another
word, and builds a riddle around it:

  What do you call a murderer that has fiber?
  A cereal killer!

Give a theme word to steer the search, or none for any pun at all.`,
		Version:      app.Version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.SetVersionTemplate("punsmith version {{.Version}}\n")

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config YAML (default: $CONFIG_PATH or ./config.yaml)")
	opts.bind(cmd)

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newDatasetCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command; SIGINT and SIGTERM cancel its context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func loadApp(cmd *cobra.Command) (*app.App, error) {
	return app.Bootstrap(cmd.Context(), configPath)
}
