// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createTools creates and returns all MCP tool definitions with their handlers.
//
// The function defines the following tools:
//   - load_native_certs: Returns the trusted-root bundle as PEM or a JSON summary
//   - list_trusted_roots: Renders every certificate with its deciding domain and verdict
//   - probe_cert_bundle: Reports the OpenSSL CA bundle file and directory
func createTools() []ToolDefinitionWithConfig {
	return []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool("load_native_certs",
				mcp.WithDescription("Load the operating system's trusted root certificates as one PEM bundle"),
				mcp.WithString("format",
					mcp.Description("Output format: 'pem' or 'json' (default: pem)"),
					mcp.Enum("pem", "json"),
					mcp.DefaultString("pem"),
				),
			),
			Handler: handleLoadNativeCerts,
		},
		{
			Tool: mcp.NewTool("list_trusted_roots",
				mcp.WithDescription("List the certificates found in the operating system's trust store as a markdown table, including the trust domain and verdict that decided each one"),
			),
			Handler: handleListTrustedRoots,
		},
		{
			Tool: mcp.NewTool("probe_cert_bundle",
				mcp.WithDescription("Report where the OpenSSL CA bundle file and certificate directory were found on this host"),
				mcp.WithArray("extra_dirs",
					mcp.Description("Additional directories to search before the well-known locations"),
					mcp.WithStringItems(),
				),
			),
			Handler: handleProbeCertBundle,
		},
	}
}
