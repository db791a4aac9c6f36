// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/native-certs/src/config"
	"github.com/H0llyW00dzZ/native-certs/src/mcp-server/templates"
)

// versionResourceHandler provides server metadata including version and capabilities.
func versionResourceHandler(version string) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		tools := createTools()
		names := make([]string, 0, len(tools))
		for _, t := range tools {
			names = append(names, t.Tool.Name)
		}

		info := map[string]any{
			"name":     serverName,
			"version":  version,
			"platform": runtime.GOOS + "/" + runtime.GOARCH,
			"capabilities": map[string]any{
				"tools":     names,
				"resources": []string{"info://version", "config://template", "docs://bundle-format"},
			},
			"supportedFormats": []string{config.FormatPEM, config.FormatJSON},
		}

		jsonData, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal version info: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(jsonData),
			},
		}, nil
	}
}

// handleConfigResource provides an example configuration showing every setting.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	example := config.Default()
	example.Probe.ExtraDirs = []string{"/opt/company/ssl"}
	example.Keychain.SecurityPath = "/usr/bin/security"

	jsonData, err := json.MarshalIndent(example, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "config://template",
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// embeddedResourceHandler serves a file from the template filesystem.
func embeddedResourceHandler(embed templates.EmbedFS, name, uri, mimeType string) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		if embed == nil {
			return nil, fmt.Errorf("template filesystem not configured for %s", uri)
		}
		content, err := embed.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: mimeType,
				Text:     string(content),
			},
		}, nil
	}
}
