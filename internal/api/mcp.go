package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mentorlabs/mentor/internal/engine"
	"github.com/mentorlabs/mentor/internal/training"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Engine engine.Engine
	Model  string
}

// NewMCPServer creates an MCP server exposing the training system as tools:
// profile discovery, instruction assembly, and consultation with a trained
// agent.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"mentor",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("mentor — training profiles that turn agents into legendary domain masters."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("list_profiles",
			mcp.WithDescription("List all available training profiles with their intensity and focus."),
		),
		mcpListProfiles(),
	)

	s.AddTool(
		mcp.NewTool("describe_profile",
			mcp.WithDescription("Return full details of a training profile, including its skill modules."),
			mcp.WithString("profile", mcp.Description("Profile key, e.g. legendary_sage"), mcp.Required()),
		),
		mcpDescribeProfile(),
	)

	s.AddTool(
		mcp.NewTool("assemble_instructions",
			mcp.WithDescription("Assemble the complete instruction text a training profile produces."),
			mcp.WithString("profile", mcp.Description("Profile key, e.g. analytical_master"), mcp.Required()),
			mcp.WithString("custom_instructions", mcp.Description("Optional extra instructions appended at the end")),
		),
		mcpAssembleInstructions(),
	)

	s.AddTool(
		mcp.NewTool("consult",
			mcp.WithDescription("Send a message to an agent trained with the given profile and return its response."),
			mcp.WithString("message", mcp.Description("The message to send"), mcp.Required()),
			mcp.WithString("profile", mcp.Description("Profile key (default balanced_expert)")),
		),
		mcpConsult(deps),
	)

	s.AddResource(
		mcp.NewResource(
			"mentor://profiles",
			"Training Profiles",
			mcp.WithResourceDescription("Catalog of all training profiles as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceProfiles(),
	)

	return s
}

func mcpListProfiles() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		b, err := json.Marshal(profileCatalog())
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal profiles: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpDescribeProfile() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := req.RequireString("profile")
		if err != nil {
			return mcpError("profile is required"), nil
		}

		p, err := training.Lookup(key)
		if err != nil {
			return mcpError(err.Error()), nil
		}

		b, err := json.Marshal(profileInfo(key, p))
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal profile: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpAssembleInstructions() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := req.RequireString("profile")
		if err != nil {
			return mcpError("profile is required"), nil
		}

		p, err := training.Lookup(key)
		if err != nil {
			return mcpError(err.Error()), nil
		}
		p.CustomInstructions = req.GetString("custom_instructions", p.CustomInstructions)

		return mcpText(training.Assemble(p)), nil
	}
}

func mcpConsult(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		message, err := req.RequireString("message")
		if err != nil {
			return mcpError("message is required"), nil
		}

		key := req.GetString("profile", "balanced_expert")
		p, err := training.Lookup(key)
		if err != nil {
			return mcpError(err.Error()), nil
		}

		a := training.NewAgent("Legendary "+p.Name, p, "", deps.Model)
		resp, err := deps.Engine.Respond(ctx, a.Instructions, message)
		if err != nil {
			return mcpError(fmt.Sprintf("consultation failed: %v", err)), nil
		}

		return mcpText(resp.Text), nil
	}
}

func mcpResourceProfiles() server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(profileCatalog())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profiles: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func profileCatalog() []ProfileInfo {
	names := training.Names()
	infos := make([]ProfileInfo, 0, len(names))
	for _, name := range names {
		p, err := training.Lookup(name)
		if err != nil {
			continue
		}
		infos = append(infos, profileInfo(name, p))
	}
	return infos
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
