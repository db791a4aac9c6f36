// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/native-certs/src/mcp-server/templates"
)

// createResources creates the static resources served to MCP clients.
//
// Parameters:
//   - embed: Template filesystem backing the documentation resource
//   - version: Version reported by info://version
func createResources(embed templates.EmbedFS, version string) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource("info://version", "Server Version",
				mcp.WithResourceDescription("Server name, version and capabilities"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: versionResourceHandler(version),
		},
		{
			Resource: mcp.NewResource("config://template", "Configuration Template",
				mcp.WithResourceDescription("Example configuration file with every supported setting"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource("docs://bundle-format", "Bundle Format",
				mcp.WithResourceDescription("Layout of the PEM bundle and how trust verdicts are resolved"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: embeddedResourceHandler(embed, "bundle-format.md", "docs://bundle-format", "text/markdown"),
		},
	}
}
