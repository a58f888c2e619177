package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"atoms-mcp/internal/formatting"
	"atoms-mcp/internal/resources"
	"atoms-mcp/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools and resources this server exposes",
	Long: `Prints the catalog of MCP tools and resources exposed by atoms-mcp.
This works offline; it does not contact the Atoms API.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		provider := tools.NewProvider(nil)
		fmt.Fprint(cmd.OutOrStdout(), formatting.RenderToolTable(provider.GetTools()))
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprint(cmd.OutOrStdout(), formatting.RenderResourceTable(resources.NewProvider().GetResources()))
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
