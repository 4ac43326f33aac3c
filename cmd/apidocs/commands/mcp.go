package commands

import (
	"github.com/spf13/cobra"

	"github.com/colossus-credit/docs/internal/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server over stdio",
		Long: "Exposes list_operations, schema_table and generate_docs as MCP tools.\n" +
			"Tool defaults are read from APIDOCS_MCP_* environment variables.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			app.log.Debug("starting MCP server")
			return mcpserver.Run(cmd.Context())
		},
	}
}
