// Package mcp provides a Model Context Protocol server for chatdown.
// It exposes the converter as MCP tools that any MCP-capable agent can use.
package mcp

import "github.com/modelcontextprotocol/go-sdk/mcp"

// NewServer creates an MCP server with all chatdown tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "chatdown",
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all chatdown tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Summarize a Telegram chat export: name, type, message count, date range, and participants. Reads the file without writing anything.",
		Annotations: readOnlyAnnotations(),
	}, handleInspect())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a Telegram chat export (JSON) to a Markdown document. Writes one output file next to the input unless an output path is given.",
		Annotations: writeAnnotations(),
	}, handleConvert())
}
