package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the atoms-mcp application.
var rootCmd = &cobra.Command{
	Use:   "atoms-mcp",
	Short: "MCP server for the Atoms voice AI platform",
	Long: `atoms-mcp exposes the Atoms voice AI platform to MCP clients.
It provides tools for managing agents, inspecting call logs and usage,
running campaigns, and initiating outbound calls, backed by the Atoms
REST API.

Set ATOMS_API_KEY to your Atoms API key before starting the server.`,
	SilenceUsage: true,
}

// SetVersion sets the version for the root command. Called from the main
// package to inject the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "atoms-mcp version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
