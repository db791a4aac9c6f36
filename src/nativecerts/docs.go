// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package nativecerts loads the host's trusted root certificates as a single
// PEM bundle.
//
// On macOS the bundle is resolved from the User, Admin and System trust
// settings domains: the first domain that lists a certificate decides its
// verdict, and only certificates trusted as roots for TLS servers are kept.
// Every block is emitted with its base64 body on a single line.
//
// On other systems the CA bundle installed for OpenSSL is located by probing
// well-known paths and returned byte for byte. When no bundle exists the
// result is empty rather than an error.
//
// Example usage:
//
//	bundle, err := nativecerts.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	pool := x509.NewCertPool()
//	pool.AppendCertsFromPEM(bundle)
package nativecerts
