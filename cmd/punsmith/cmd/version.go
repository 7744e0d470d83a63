package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/punsmith/internal/app"
)

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	var shortOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if shortOutput {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), app.Version)
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "punsmith %s\n", app.BuildVersion())
			return err
		},
	}

	cmd.Flags().BoolVar(&shortOutput, "short", false, "Output only the version number")

	return cmd
}
