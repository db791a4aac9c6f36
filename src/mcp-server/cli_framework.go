// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/native-certs/src/config"
	"github.com/H0llyW00dzZ/native-certs/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/native-certs/src/logger"
)

// CLIFramework wraps the MCP server in a cobra command.
//
// Without flags the command serves MCP over stdin and stdout. With
// --instructions it prints the server instructions and exits, like gopls.
type CLIFramework struct {
	configFile string
	deps       ServerDependencies
	stdin      io.Reader
	stdout     io.Writer
}

// NewCLIFramework creates a new CLI framework instance.
//
// Parameters:
//   - configFile: Path to the configuration file; empty falls back to
//     NATIVE_CERTS_CONFIG_FILE, then to the defaults
//   - deps: Server dependencies; Config is replaced by the loaded file
//
// Returns:
//   - *CLIFramework: Initialized CLI framework ready for building commands
func NewCLIFramework(configFile string, deps ServerDependencies) *CLIFramework {
	return &CLIFramework{
		configFile: configFile,
		deps:       deps,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
	}
}

// BuildRootCommand creates the root cobra command.
//
// Returns:
//   - *cobra.Command: Command that starts the server or prints instructions
func (cf *CLIFramework) BuildRootCommand() *cobra.Command {
	exeName := posix.GetExecutableName("native-certs-mcp")

	var showInstructions bool
	rootCmd := &cobra.Command{
		Use:   exeName,
		Short: "MCP server exposing the operating system's trusted root certificates",
		Long: `Serve the Model Context Protocol over stdin and stdout.

Clients can load the host's trusted-root PEM bundle, list the certificates
with the trust verdict that decided them, and probe for the OpenSSL CA bundle.`,
		Example: fmt.Sprintf(`  %[1]s
  %[1]s --config native-certs.yaml
  %[1]s --instructions`, exeName),
		Version:       cf.deps.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showInstructions {
				text, err := loadInstructions(cf.deps.Embed, cf.deps.ToolsWithConfig)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			}
			return cf.startMCPServer(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&showInstructions, "instructions", false, "print usage workflows for the server tools")
	rootCmd.PersistentFlags().StringVar(&cf.configFile, "config", cf.configFile, "path to configuration file (.json, .yaml, .yml)")

	return rootCmd
}

// startMCPServer loads the configuration, builds the server and serves stdio
// until ctx is cancelled or the client disconnects.
func (cf *CLIFramework) startMCPServer(ctx context.Context) error {
	cfg, err := config.Load(cf.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Stdout carries the protocol; diagnostics go to stderr only when asked.
	log := cf.deps.Logger
	if log == nil {
		log = logger.NewMCPLogger(os.Stderr, !cfg.Log.Verbose)
	}

	instructions, err := loadInstructions(cf.deps.Embed, cf.deps.ToolsWithConfig)
	if err != nil {
		return err
	}

	mcpServer, err := NewServerBuilder().
		WithConfig(cfg).
		WithEmbed(cf.deps.Embed).
		WithVersion(cf.deps.Version).
		WithLoader(cf.deps.Loader).
		WithLogger(log).
		WithTools(cf.deps.Tools...).
		WithToolsWithConfig(cf.deps.ToolsWithConfig...).
		WithResources(cf.deps.Resources...).
		WithInstructions(instructions).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build MCP server: %w", err)
	}

	log.Printf("%s MCP server %s started", serverName, cf.deps.Version)

	stdioServer := server.NewStdioServer(mcpServer)
	if err := stdioServer.Listen(ctx, cf.stdin, cf.stdout); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Println("MCP server stopped")
	return nil
}
