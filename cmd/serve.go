package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing desktopctl actions as tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes every desktopctl
action as a tool. The session environment is resolved once at startup and
reused for every call. Calls are executed one at a time.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP on /mcp, Prometheus metrics on /metrics

Examples:
  desktopctl serve
  desktopctl --display :1 serve --transport streamable-http --port 8080`,
	Args: positional(),
	RunE: runServe,
}

func init() {
	displayCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	cfg := MCPConfig{
		Transport: transport,
		Port:      port,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv := newMCPServer(app.runner, app.cfg, app.logger)
	if err := srv.serve(cmd.Context(), cfg); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
