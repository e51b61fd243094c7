package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecadlabs/xbuf/internal/build"
)

// NewVersionCommand returns the command to get xbuf version
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Return the xbuf version",
		RunE:  version,
		Args:  cobra.NoArgs,
	}
}

func version(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "xbuf version %s date %s commit %s\n", build.Version, build.Date, build.Commit)
	return err
}
