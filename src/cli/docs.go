// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for exporting the host's
// trusted root certificates.
// It implements a Cobra-based CLI whose root command writes the PEM bundle,
// a JSON summary or a markdown table, and whose subcommands probe for the
// OpenSSL CA bundle and inspect an existing bundle file.
// Settings can come from a JSON or YAML file, with flags taking precedence.
package cli
