// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/native-certs/src/config"
	"github.com/H0llyW00dzZ/native-certs/src/logger"
	"github.com/H0llyW00dzZ/native-certs/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/native-certs/src/nativecerts"
)

// serverName is reported to MCP clients during initialization.
const serverName = "Native Trusted Root Certificates"

// ErrMissingLoader is returned by [ServerBuilder.Build] when tools are
// registered without a bundle loader.
var ErrMissingLoader = errors.New("mcpserver: bundle loader not configured")

// Loader produces the trusted-root report served by the tools.
// [nativecerts.Inspect] is the production implementation.
type Loader func(opts ...nativecerts.Option) (*nativecerts.Report, error)

// ToolHandler defines the signature for tool handlers that matches [MCP] server expectations.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = server.ToolHandlerFunc

// ToolHandlerWithConfig defines tool handlers that need the server configuration
// and the bundle loader.
//
// Parameters:
//   - ctx: Context for cancellation
//   - request: The MCP tool call request containing arguments and metadata
//   - env: Configuration, loader and logger shared by all tools
//
// Returns:
//   - The tool execution result or an error if the tool failed
type ToolHandlerWithConfig func(ctx context.Context, request mcp.CallToolRequest, env *ToolEnv) (*mcp.CallToolResult, error)

// ToolEnv is what a [ToolHandlerWithConfig] receives besides the request.
type ToolEnv struct {
	Config *config.Config
	Load   Loader
	Log    logger.Logger
}

// ToolDefinition holds a tool definition and its handler.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
}

// ToolDefinitionWithConfig holds a tool definition that requires a [ToolEnv].
type ToolDefinitionWithConfig struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithConfig
}

// ServerDependencies holds all dependencies needed to create the MCP server.
//
// Fields:
//   - Config: Settings applied to every load
//   - Embed: Embedded templates for resources and instructions
//   - Version: Server version string
//   - Loader: Source of trusted-root reports
//   - Logger: Destination for diagnostics; never stdout
//   - Tools: Tool definitions without configuration requirements
//   - ToolsWithConfig: Tool definitions that need a [ToolEnv]
//   - Resources: Static and dynamic resources
//   - Instructions: Text sent to clients during initialization
type ServerDependencies struct {
	Config          *config.Config
	Embed           templates.EmbedFS
	Version         string
	Loader          Loader
	Logger          logger.Logger
	Tools           []ToolDefinition
	ToolsWithConfig []ToolDefinitionWithConfig
	Resources       []server.ServerResource
	Instructions    string
}

// ServerBuilder helps construct the [MCP] server with proper dependencies using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(cfg).
//	    WithVersion("1.0.0").
//	    WithLoader(nativecerts.Inspect).
//	    WithDefaultTools().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with default empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the configuration applied to every load.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithEmbed sets the embedded filesystem for templates.
func (b *ServerBuilder) WithEmbed(embed templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = embed
	return b
}

// WithVersion sets the server version string.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithLoader sets the source of trusted-root reports.
func (b *ServerBuilder) WithLoader(load Loader) *ServerBuilder {
	b.deps.Loader = load
	return b
}

// WithLogger sets the diagnostics logger.
func (b *ServerBuilder) WithLogger(l logger.Logger) *ServerBuilder {
	b.deps.Logger = l
	return b
}

// WithTools adds tool definitions that don't require configuration access.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithToolsWithConfig adds tool definitions that receive a [ToolEnv].
func (b *ServerBuilder) WithToolsWithConfig(tools ...ToolDefinitionWithConfig) *ServerBuilder {
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, tools...)
	return b
}

// WithResources adds resources readable by URI, such as "info://version".
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithInstructions sets the instructions sent to clients during initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithDefaultTools registers every tool this package provides.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	return b.WithToolsWithConfig(createTools()...)
}

// Build creates the [MCP] server with all configured dependencies.
//
// Returns:
//   - A pointer to the configured MCPServer instance
//   - An error wrapping [ErrMissingLoader] when configured tools have no loader
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	if len(b.deps.ToolsWithConfig) > 0 && b.deps.Loader == nil {
		return nil, ErrMissingLoader
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}
	s := server.NewMCPServer(serverName, b.deps.Version, opts...)

	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, tool.Handler)
	}

	s.AddTools(bindTools(b.deps.ToolsWithConfig, b.env())...)

	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	return s, nil
}

// env collects what tool handlers need, filling in defaults.
func (b *ServerBuilder) env() *ToolEnv {
	env := &ToolEnv{
		Config: b.deps.Config,
		Load:   b.deps.Loader,
		Log:    b.deps.Logger,
	}
	if env.Config == nil {
		env.Config = config.Default()
	}
	if env.Log == nil {
		env.Log = logger.Discard
	}
	return env
}

// bindTools closes each handler over env so it fits [server.ServerTool].
func bindTools(tools []ToolDefinitionWithConfig, env *ToolEnv) []server.ServerTool {
	bound := make([]server.ServerTool, 0, len(tools))
	for _, tool := range tools {
		handler := tool.Handler
		bound = append(bound, server.ServerTool{
			Tool: tool.Tool,
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, request, env)
			},
		})
	}
	return bound
}
