// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// native-certs writes the trusted root certificates of the operating system
// as one PEM bundle.
//
// On macOS the bundle is resolved from the User, Admin and System trust
// settings domains; the first domain that lists a certificate decides its
// verdict, and only certificates trusted as roots are written. Elsewhere the
// OpenSSL CA bundle file is located and copied verbatim.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/native-certs/cmd/native-certs@latest
//
// # Usage
//
//	native-certs [FLAGS]
//	native-certs probe [--json]
//	native-certs inspect FILE [--json]
//
// # Flags
//
//	-o, --output      Destination file (default: stdout)
//	-j, --json        Emit JSON summary with PEM-encoded certificates
//	    --table       Display the certificates as a markdown table
//	-c, --config      Configuration file (.json, .yaml, .yml)
//	-v, --verbose     Log progress to stderr
//	    --probe-dir   Extra directory to search for a CA bundle (repeatable)
//	    --security    Path of the macOS security binary
//
// # Examples
//
// Write the bundle for a container image:
//
//	native-certs -o ca-bundle.pem
//
// Show which domain and verdict decided each certificate:
//
//	native-certs --table
//
// Check an exported bundle:
//
//	native-certs inspect ca-bundle.pem
package main
