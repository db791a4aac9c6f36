// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/native-certs/src/nativecerts"
	"github.com/H0llyW00dzZ/native-certs/src/probe"
)

// loadOptions translates the server configuration into load options.
func (env *ToolEnv) loadOptions() []nativecerts.Option {
	return []nativecerts.Option{
		nativecerts.WithLogger(env.Log),
		nativecerts.WithProbeDirs(env.Config.Probe.ExtraDirs...),
		nativecerts.WithSecurityPath(env.Config.Keychain.SecurityPath),
	}
}

// inspect runs the loader unless ctx is already done.
func (env *ToolEnv) inspect(ctx context.Context) (*nativecerts.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return env.Load(env.loadOptions()...)
}

// handleLoadNativeCerts returns the trusted-root bundle.
//
// Parameters:
//   - ctx: Context for cancellation
//   - request: Tool call with an optional "format" argument ("pem" or "json")
//   - env: Server configuration and loader
//
// Returns:
//   - The bundle text, or an error result when loading fails
//
// An empty bundle is reported in words, since an empty text result is easy
// to mistake for a transport problem.
func handleLoadNativeCerts(ctx context.Context, request mcp.CallToolRequest, env *ToolEnv) (*mcp.CallToolResult, error) {
	format := request.GetString("format", "pem")
	if format != "pem" && format != "json" {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q: use 'pem' or 'json'", format)), nil
	}

	report, err := env.inspect(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load native certificates: %v", err)), nil
	}

	if format == "json" {
		data, err := report.JSON()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to render JSON: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}

	if len(report.Bundle) == 0 {
		return mcp.NewToolResultText("No trusted root certificates were found on this host."), nil
	}
	return mcp.NewToolResultText(string(report.Bundle)), nil
}

// handleListTrustedRoots renders the loaded certificates as a markdown table.
func handleListTrustedRoots(ctx context.Context, _ mcp.CallToolRequest, env *ToolEnv) (*mcp.CallToolResult, error) {
	report, err := env.inspect(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load native certificates: %v", err)), nil
	}

	table, err := report.Table()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render table: %v", err)), nil
	}

	source := report.Source
	if source == "" {
		source = "none"
	}
	return mcp.NewToolResultText(fmt.Sprintf("Source: %s\n\n%s", source, table)), nil
}

// handleProbeCertBundle reports the probed OpenSSL locations as JSON.
func handleProbeCertBundle(ctx context.Context, request mcp.CallToolRequest, env *ToolEnv) (*mcp.CallToolResult, error) {
	if err := ctx.Err(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dirs := slices.Concat(request.GetStringSlice("extra_dirs", nil), env.Config.Probe.ExtraDirs)
	p := probe.New(probe.WithExtraDirs(dirs...))

	out := struct {
		probe.Result
		Searched []string `json:"searched"`
	}{
		Result:   p.Probe(),
		Searched: p.Dirs(),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal probe result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
