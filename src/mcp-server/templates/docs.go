// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files:
//   - instructions.md: Go text/template rendered into the server instructions
//   - bundle-format.md: Served as the docs://bundle-format resource
package templates
