// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/native-certs/src/config"
	"github.com/H0llyW00dzZ/native-certs/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/native-certs/src/logger"
	"github.com/H0llyW00dzZ/native-certs/src/nativecerts"
)

var (
	// OperationPerformed reports whether the last run exported a bundle.
	OperationPerformed bool
	// OperationPerformedSuccessfully reports whether that export succeeded.
	OperationPerformedSuccessfully bool
)

// flags holds the values bound to the root command's persistent flags.
type flags struct {
	output    string
	json      bool
	table     bool
	config    string
	verbose   bool
	probeDirs []string
	security  string
}

// Execute runs the root command with the process arguments.
//
// Parameters:
//   - ctx: Context checked before work starts and before output is written
//   - version: Version string reported by --version
//   - log: Logger for progress and errors
//
// Returns:
//   - error: Any error from flag parsing, loading or writing
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Output goes to the command's
// configured writer, so callers can capture it.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	f := &flags{}
	name := posix.GetExecutableName("native-certs")

	rootCmd := &cobra.Command{
		Use:   name,
		Short: "Export the operating system's trusted root certificates",
		Long: `Export the operating system's trusted root certificates as one PEM bundle.

On macOS the User, Admin and System trust settings are merged; the first
domain that lists a certificate decides whether it is trusted. Elsewhere the
CA bundle installed for OpenSSL is located and copied verbatim.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, f, log)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "configuration file (.json, .yaml, .yml); also "+config.EnvConfigFile)
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "print progress to stderr")
	pf.StringSliceVar(&f.probeDirs, "probe-dir", nil, "extra directory to search for a CA bundle (repeatable)")
	pf.StringVar(&f.security, "security", "", "path of the macOS security tool")

	rootCmd.Flags().StringVarP(&f.output, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	rootCmd.Flags().BoolVarP(&f.json, "json", "j", false, "emit a JSON summary of the trusted roots")
	rootCmd.Flags().BoolVar(&f.table, "table", false, "display certificates as a markdown table")
	rootCmd.MarkFlagsMutuallyExclusive("json", "table")

	rootCmd.AddCommand(newProbeCommand(f), newInspectCommand())
	return rootCmd
}

// settings merges the configuration file with explicitly set flags.
func (f *flags) settings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("output") {
		cfg.Output.File = f.output
	}
	switch {
	case f.json:
		cfg.Output.Format = config.FormatJSON
	case f.table:
		cfg.Output.Format = config.FormatTable
	}
	if f.verbose {
		cfg.Log.Verbose = true
	}
	cfg.Probe.ExtraDirs = slices.Concat(f.probeDirs, cfg.Probe.ExtraDirs)
	if f.security != "" {
		cfg.Keychain.SecurityPath = f.security
	}
	return cfg, nil
}

func runExport(cmd *cobra.Command, f *flags, log logger.Logger) error {
	OperationPerformed, OperationPerformedSuccessfully = false, false

	cfg, err := f.settings(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := ctx.Err(); err != nil {
		return err
	}

	OperationPerformed = true
	report, err := nativecerts.Inspect(
		nativecerts.WithLogger(progressLogger(cfg, log)),
		nativecerts.WithProbeDirs(cfg.Probe.ExtraDirs...),
		nativecerts.WithSecurityPath(cfg.Keychain.SecurityPath),
	)
	if err != nil {
		return fmt.Errorf("failed to load native certificates: %w", err)
	}

	var out []byte
	switch cfg.Output.Format {
	case config.FormatJSON:
		if out, err = report.JSON(); err != nil {
			return fmt.Errorf("failed to render JSON: %w", err)
		}
		out = append(out, '\n')
	case config.FormatTable:
		table, err := report.Table()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
		out = []byte(table)
	default:
		out = report.Bundle
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeOutput(cmd.OutOrStdout(), cfg.Output.File, out); err != nil {
		return err
	}

	if cfg.Log.Verbose {
		if count, err := report.Count(); err == nil {
			log.Printf("exported %d trusted root certificates", count)
		}
	}
	OperationPerformedSuccessfully = true
	return nil
}

// progressLogger returns log when verbose output is enabled.
func progressLogger(cfg *config.Config, log logger.Logger) logger.Logger {
	if cfg.Log.Verbose && log != nil {
		return log
	}
	return logger.Discard
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing to output file: %w", err)
	}
	return nil
}
