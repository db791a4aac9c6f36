// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"runtime"
	"strings"
	"text/template"

	"github.com/H0llyW00dzZ/native-certs/src/mcp-server/templates"
)

type instructionsTool struct {
	Name        string
	Description string
}

type instructionsData struct {
	Platform string
	Tools    []instructionsTool
}

// loadInstructions renders instructions.md with the registered tools, so the
// text always matches what the server offers.
//
// Parameters:
//   - embed: Template filesystem containing instructions.md
//   - tools: Tools to list
//
// Returns:
//   - string: Rendered instructions
//   - error: Template loading, parsing or execution error
func loadInstructions(embed templates.EmbedFS, tools []ToolDefinitionWithConfig) (string, error) {
	raw, err := embed.ReadFile("instructions.md")
	if err != nil {
		return "", fmt.Errorf("failed to load instructions template: %w", err)
	}

	tmpl, err := template.New("instructions").Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	data := instructionsData{Platform: runtime.GOOS}
	for _, t := range tools {
		data.Tools = append(data.Tools, instructionsTool{Name: t.Tool.Name, Description: t.Tool.Description})
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}
	return out.String(), nil
}
