// Package main provides the entry point for the chatdown CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	chatdownmcp "github.com/gorewood/chatdown/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run chatdown as a Model Context Protocol (MCP) server over stdio.

This exposes the converter as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "chatdown": {
        "command": "chatdown",
        "args": ["serve"]
      }
    }
  }

Available tools: inspect, convert`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := chatdownmcp.NewServer(buildVersion())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
