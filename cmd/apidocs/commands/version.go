package commands

import (
	"github.com/spf13/cobra"

	docs "github.com/colossus-credit/docs"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Skips configuration loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			printKV(cmd, "apidocs", docs.Version())
			printKV(cmd, "Commit", docs.Commit())
			printKV(cmd, "Built", docs.BuildTime())
			printKV(cmd, "Go", docs.GoVersion())
		},
	}
}
