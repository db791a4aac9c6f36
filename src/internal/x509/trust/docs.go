// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509trust reconciles the operating system's certificate trust
// domains into one trusted-root bundle.
//
// The domains are consulted in a fixed precedence order: per-user settings
// override locally administered settings, which in turn override the system
// settings. The [Resolver] walks the domains in that order and records each
// certificate the first time it is seen, so a verdict from a higher-precedence
// domain is never replaced. Certificates whose recorded verdict is
// [TrustRoot] or [TrustAsRoot] are then emitted as concatenated PEM blocks.
//
// Platform bindings implement [Store]; this package has no knowledge of how
// a domain is enumerated.
package x509trust
