// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package keychain exposes the macOS certificate trust settings domains as an
// [x509trust.Store].
//
// It drives the system "security" tool rather than linking the Security
// framework: "security trust-settings-export" yields each domain's trust
// settings as a property list keyed by SHA-1 fingerprint, and
// "security find-certificate -a -p" yields the certificate bodies those
// fingerprints refer to.
//
// Command execution goes through a [Runner], so everything except the final
// exec call is exercised on every platform.
package keychain
