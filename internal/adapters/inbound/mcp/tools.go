package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vismigrate/vismigrate/internal/adapters/outbound/backup"
	"github.com/vismigrate/vismigrate/internal/adapters/outbound/detector"
	"github.com/vismigrate/vismigrate/internal/adapters/outbound/gitinfo"
	"github.com/vismigrate/vismigrate/internal/adapters/outbound/reporter"
	"github.com/vismigrate/vismigrate/internal/adapters/outbound/scanner"
	"github.com/vismigrate/vismigrate/internal/application"
)

// registerTools registers all vismigrate MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. vismigrate_detect
	s.AddTool(
		mcplib.NewTool("vismigrate_detect",
			mcplib.WithDescription("Detect the visual testing platform, framework, and language of a project. Returns the detection result as JSON."),
			mcplib.WithString("path",
				mcplib.Description("Project path (defaults to the server's project path)"),
			),
		),
		handleDetect(projectPath),
	)

	// 2. vismigrate_plan
	s.AddTool(
		mcplib.NewTool("vismigrate_plan",
			mcplib.WithDescription("Plan a migration to Sauce Labs Visual without writing any file. Returns the full migration report as JSON, including per-file warnings."),
			mcplib.WithString("path",
				mcplib.Description("Project path (defaults to the server's project path)"),
			),
		),
		handlePlan(projectPath),
	)
}

func resolvePath(request mcplib.CallToolRequest, fallback string) string {
	if path := request.GetString("path", ""); path != "" {
		return path
	}
	return fallback
}

func handleDetect(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewDetectService(scanner.New(), detector.New(nil))

		result, err := svc.Detect(resolvePath(request, projectPath))
		if err != nil {
			return errorResult(fmt.Sprintf("detection failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handlePlan(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewMigrationService(
			scanner.New(),
			detector.New(nil),
			backup.New(),
			gitinfo.New(),
			reporter.New(),
			nil,
		)

		report, err := svc.Plan(resolvePath(request, projectPath))
		if err != nil {
			return errorResult(fmt.Sprintf("planning failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
