// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes the host's trusted root certificates over the
// [MCP] stdio transport.
//
// Tools:
//   - load_native_certs: The trusted-root PEM bundle, or its JSON summary
//   - list_trusted_roots: Markdown table of the certificates and their verdicts
//   - probe_cert_bundle: The OpenSSL CA bundle locations found on the host
//
// Resources:
//   - info://version: Server name, version and capabilities
//   - config://template: Example configuration file
//   - docs://bundle-format: Description of the emitted PEM layout
//
// The server is assembled with [ServerBuilder] and started through the cobra
// command returned by [CLIFramework.BuildRootCommand].
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
