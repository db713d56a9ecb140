package api

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mentorlabs/mentor/internal/engine"
)

// --- helpers ---

func testMCPDeps() MCPDeps {
	stub := engine.NewStub("test-model")
	stub.StreamDelay = -1
	return MCPDeps{Engine: stub, Model: "test-model"}
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("no content in result")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return tc.Text
}

func makeCallToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// --- tests ---

func TestMCPTool_ListProfiles(t *testing.T) {
	handler := mcpListProfiles()

	result, err := handler(context.Background(), makeCallToolRequest("list_profiles", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", toolText(t, result))
	}

	var infos []ProfileInfo
	if err := json.Unmarshal([]byte(toolText(t, result)), &infos); err != nil {
		t.Fatalf("result is not a profile list: %v", err)
	}
	if len(infos) != 6 {
		t.Fatalf("expected 6 profiles, got %d", len(infos))
	}
}

func TestMCPTool_DescribeProfile(t *testing.T) {
	handler := mcpDescribeProfile()

	result, err := handler(context.Background(), makeCallToolRequest("describe_profile", map[string]interface{}{
		"profile": "ethical_leader",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var info ProfileInfo
	if err := json.Unmarshal([]byte(toolText(t, result)), &info); err != nil {
		t.Fatalf("result is not a profile: %v", err)
	}
	if info.Name != "Ethical Leader" || info.Focus != "ethical" {
		t.Errorf("unexpected profile: %+v", info)
	}
}

func TestMCPTool_DescribeProfile_Unknown(t *testing.T) {
	handler := mcpDescribeProfile()

	result, err := handler(context.Background(), makeCallToolRequest("describe_profile", map[string]interface{}{
		"profile": "archmage",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected a tool error")
	}
	if !strings.Contains(toolText(t, result), "Available profiles") {
		t.Errorf("error should enumerate valid names: %s", toolText(t, result))
	}
}

func TestMCPTool_AssembleInstructions(t *testing.T) {
	handler := mcpAssembleInstructions()

	result, err := handler(context.Background(), makeCallToolRequest("assemble_instructions", map[string]interface{}{
		"profile":             "analytical_master",
		"custom_instructions": "Prefer quantitative evidence.",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", toolText(t, result))
	}

	text := toolText(t, result)
	if !strings.Contains(text, "exceptional analytical") {
		t.Error("assembled text missing the analytical focus block")
	}
	if !strings.Contains(text, "Prefer quantitative evidence.") {
		t.Error("custom instructions not appended")
	}
}

func TestMCPTool_Consult(t *testing.T) {
	handler := mcpConsult(testMCPDeps())

	result, err := handler(context.Background(), makeCallToolRequest("consult", map[string]interface{}{
		"message": "evaluate this plan",
		"profile": "innovation_genius",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", toolText(t, result))
	}
	if !strings.Contains(toolText(t, result), "Reimagining the Problem") {
		t.Error("consultation not routed through the creative profile")
	}
}

func TestMCPTool_Consult_DefaultProfile(t *testing.T) {
	handler := mcpConsult(testMCPDeps())

	result, err := handler(context.Background(), makeCallToolRequest("consult", map[string]interface{}{
		"message": "hello",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", toolText(t, result))
	}
	// balanced_expert assembles without a named signature, so the generic
	// legendary response answers.
	if !strings.Contains(toolText(t, result), "legendary training capabilities") {
		t.Errorf("unexpected default consultation: %.80s", toolText(t, result))
	}
}

func TestMCPResource_Profiles(t *testing.T) {
	handler := mcpResourceProfiles()

	contents, err := handler(context.Background(), mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: "mentor://profiles"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(contents))
	}
	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("expected TextResourceContents, got %T", contents[0])
	}
	if text.MIMEType != "application/json" {
		t.Errorf("mime type = %q", text.MIMEType)
	}

	var infos []ProfileInfo
	if err := json.Unmarshal([]byte(text.Text), &infos); err != nil {
		t.Fatalf("resource is not a profile list: %v", err)
	}
	if len(infos) != 6 {
		t.Errorf("expected 6 profiles, got %d", len(infos))
	}
}
