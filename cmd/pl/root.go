package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/package-layer/internal/messages"
)

// newRootCmd builds the pl command tree.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newReportCmd())

	return cmd
}
