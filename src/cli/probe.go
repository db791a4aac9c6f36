// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/native-certs/src/probe"
)

func newProbeCommand(f *flags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Show where the OpenSSL CA bundle and directory were found",
		Long: `Search SSL_CERT_FILE, SSL_CERT_DIR and the well-known OpenSSL locations and
print the CA bundle file and certificate directory that were found. Empty
fields were not found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.settings(cmd)
			if err != nil {
				return err
			}

			result := probe.New(probe.WithExtraDirs(cfg.Probe.ExtraDirs...)).Probe()

			var out []byte
			if asJSON {
				out, err = json.MarshalIndent(result, "", "  ")
				out = append(out, '\n')
			} else {
				out, err = yaml.Marshal(probeOutput{CertFile: result.CertFile, CertDir: result.CertDir})
			}
			if err != nil {
				return fmt.Errorf("failed to encode probe result: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "emit JSON instead of YAML")
	return cmd
}

// probeOutput lists both fields even when they are empty.
type probeOutput struct {
	CertFile string `yaml:"cert_file"`
	CertDir  string `yaml:"cert_dir"`
}
