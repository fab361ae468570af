// Package mcp exposes detection and migration planning over the Model
// Context Protocol so AI coding assistants can query a project before
// migrating it.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewVismigrateMCPServer creates an MCP server with all vismigrate tools
// registered. The projectPath is the root directory of the project to
// analyze; a tool call may override it with its own path argument.
func NewVismigrateMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"vismigrate",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
