package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pokedex/pkg/version"
)

func newVersionCmd(ver string) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := version.Semver(); err != nil {
				return err
			}
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), ver)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")

	return cmd
}
