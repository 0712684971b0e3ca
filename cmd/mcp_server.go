package cmd

import (
	"context"
	"fmt"

	"niri-balance/internal/niri"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"
)

// mcpServer exposes the command set as MCP tools. Every tool call dials
// the compositor fresh, matching the one-shot CLI behavior.
type mcpServer struct {
	mcp *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with all tools.
func newMCPServer() *mcpServer {
	s := &mcpServer{}
	s.mcp = mcpserver.NewMCPServer(
		"niri-balance",
		"1.0.0",
	)
	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// balance
	s.mcp.AddTool(
		mcp.NewTool("balance",
			mcp.WithDescription("Rearrange the windows on the focused workspace into balanced side-by-side columns"),
			mcp.WithNumber("columns", mcp.Description("Column count override (0 = automatic sqrt rule)")),
			mcp.WithString("display", mcp.Description("Column display mode: normal, tabbed")),
			mcp.WithBoolean("dry-run", mcp.Description("Compute the plan without issuing any actions")),
		),
		s.handleBalance,
	)

	// windows
	s.mcp.AddTool(
		mcp.NewTool("windows",
			mcp.WithDescription("List windows known to the compositor with their ids, titles and workspace assignments"),
			mcp.WithBoolean("focused", mcp.Description("Only windows on the focused workspace")),
		),
		s.handleWindows,
	)

	// workspaces
	s.mcp.AddTool(
		mcp.NewTool("workspaces",
			mcp.WithDescription("List workspaces known to the compositor"),
		),
		s.handleWorkspaces,
	)
}

func (s *mcpServer) handleBalance(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	columns := intParam(params, "columns", 0)
	displayName := stringParam(params, "display", "normal")
	dryRun := boolParam(params, "dry-run", false)

	display, err := niri.ParseColumnDisplay(displayName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := dialCompositor()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer client.Close()

	report, err := balanceFocusedWorkspace(client, balanceOptions{
		Columns: columns,
		Display: display,
		DryRun:  dryRun,
	}, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, _ := yaml.Marshal(report)
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	focused := boolParam(params, "focused", false)

	client, err := dialCompositor()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer client.Close()

	windows, err := client.Windows()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if focused {
		workspaces, err := client.Workspaces()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		ws, err := focusedWorkspace(workspaces)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var filtered []niri.Window
		for _, w := range windows {
			if w.WorkspaceID != nil && *w.WorkspaceID == ws.ID {
				filtered = append(filtered, w)
			}
		}
		windows = filtered
	}

	b, _ := yaml.Marshal(windows)
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleWorkspaces(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, err := dialCompositor()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer client.Close()

	workspaces, err := client.Workspaces()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, _ := yaml.Marshal(workspaces)
	return mcp.NewToolResultText(string(b)), nil
}

// stringParam extracts a string parameter from MCP tool arguments.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// intParam extracts an integer parameter; MCP numbers arrive as float64.
func intParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// boolParam extracts a boolean parameter from MCP tool arguments.
func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
