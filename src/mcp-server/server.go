// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/native-certs/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/native-certs/src/nativecerts"
	verpkg "github.com/H0llyW00dzZ/native-certs/src/version"
)

var appVersion = verpkg.Version // default version

// GetVersion returns the current version of the MCP server.
//
// Returns:
//   - string: The version passed to [Run], or the module default
func GetVersion() string {
	return appVersion
}

// DefaultDependencies returns the production server dependencies.
func DefaultDependencies(version string) ServerDependencies {
	return ServerDependencies{
		Embed:           templates.MagicEmbed,
		Version:         version,
		Loader:          nativecerts.Inspect,
		ToolsWithConfig: createTools(),
		Resources:       createResources(templates.MagicEmbed, version),
	}
}

// Run starts the MCP server with the native certificate tools.
//
// Parameters:
//   - version: Version string to set for the server (e.g., "0.1.0")
//
// Returns:
//   - error: Configuration, build or transport error; nil after a signal
//
// SIGINT and SIGTERM stop the server gracefully.
func Run(version string) error {
	appVersion = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewCLIFramework("", DefaultDependencies(version)).BuildRootCommand()
	return cmd.ExecuteContext(ctx)
}
