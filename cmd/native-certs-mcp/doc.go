// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// native-certs-mcp serves the operating system's trusted root certificates
// over the Model Context Protocol on stdin and stdout.
//
// # Installation
//
//	go install github.com/H0llyW00dzZ/native-certs/cmd/native-certs-mcp@latest
//
// # Tools
//
//   - load_native_certs: the PEM bundle, or a JSON summary
//   - list_trusted_roots: every certificate with its deciding domain and verdict
//   - probe_cert_bundle: the OpenSSL CA bundle file and directory
//
// # Configuration
//
// A JSON or YAML file can be passed with --config or named by the
// NATIVE_CERTS_CONFIG_FILE environment variable. Set log.verbose to write
// diagnostics to stderr.
//
// # Client setup
//
//	{
//	  "mcpServers": {
//	    "native-certs": {
//	      "command": "native-certs-mcp",
//	      "args": ["--config", "/etc/native-certs.yaml"]
//	    }
//	  }
//	}
package main
