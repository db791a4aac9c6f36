// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	x509certs "github.com/H0llyW00dzZ/native-certs/src/internal/x509/certs"
	x509trust "github.com/H0llyW00dzZ/native-certs/src/internal/x509/trust"
)

// ErrNoCertificates is returned when an inspected file holds no certificates.
var ErrNoCertificates = errors.New("cli: no certificates found")

func newInspectCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Describe the certificates in a PEM, DER or PKCS#7 bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("error reading input file: %w", err)
			}

			certs, err := x509certs.New().DecodeMultiple(data)
			if err != nil {
				return fmt.Errorf("error decoding certificates: %w", err)
			}
			if len(certs) == 0 {
				return fmt.Errorf("%w in %s", ErrNoCertificates, args[0])
			}

			var out []byte
			if asJSON {
				if out, err = x509trust.CertificatesSummaryJSON(certs, args[0]); err != nil {
					return fmt.Errorf("failed to render JSON: %w", err)
				}
				out = append(out, '\n')
			} else {
				out = []byte(x509trust.RenderBundleTable(certs))
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "emit a JSON summary instead of a table")
	return cmd
}
