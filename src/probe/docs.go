// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package probe locates the CA bundle installed by the host's OpenSSL
// distribution and loads it verbatim.
//
// Locations are searched in the same order as OpenSSL-compatible tooling:
// the SSL_CERT_FILE and SSL_CERT_DIR environment variables first, then a list
// of well-known directories combined with well-known bundle file names.
//
// Example usage:
//
//	p := probe.New()
//	bundle, err := p.LoadNativeCerts()
//	if err != nil {
//		// handle error
//	}
//	// bundle is empty when no CA file was found
package probe
