// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509trust

// Domain identifies one of the operating system's certificate trust stores.
type Domain int

const (
	// User is the per-user trust domain.
	User Domain = iota
	// Admin is the locally administered trust domain.
	Admin
	// System is the system-wide trust domain shipped with the OS.
	System
)

// Domains returns the trust domains in precedence order, highest first.
//
// The order is User, Admin, System. Reordering it silently inverts trust
// decisions, so callers must never sort or reshuffle the result.
func Domains() []Domain {
	return []Domain{User, Admin, System}
}

// String returns the lowercase domain name.
func (d Domain) String() string {
	switch d {
	case User:
		return "user"
	case Admin:
		return "admin"
	case System:
		return "system"
	default:
		return "unknown"
	}
}

// Verdict is the outcome a trust domain attaches to a certificate for the
// TLS server policy.
//
// The numeric values match the platform's kSecTrustSettingsResult constants.
type Verdict int

const (
	// Invalid is any result value outside the known set.
	Invalid Verdict = iota
	// TrustRoot marks a certificate explicitly trusted as a root.
	TrustRoot
	// TrustAsRoot marks a non-root certificate trusted as if it were a root.
	TrustAsRoot
	// Deny marks a certificate that must not be trusted.
	Deny
	// Unspecified defers the decision to the next applicable setting.
	Unspecified
)

// ParseVerdict converts a raw kSecTrustSettingsResult value into a Verdict.
// Unknown values map to Invalid.
func ParseVerdict(v int) Verdict {
	switch Verdict(v) {
	case TrustRoot, TrustAsRoot, Deny, Unspecified:
		return Verdict(v)
	default:
		return Invalid
	}
}

// IsRoot reports whether the verdict admits the certificate into the
// trusted-root bundle.
func (v Verdict) IsRoot() bool {
	return v == TrustRoot || v == TrustAsRoot
}

// String returns a stable, hyphenated name for the verdict.
func (v Verdict) String() string {
	switch v {
	case TrustRoot:
		return "trust-root"
	case TrustAsRoot:
		return "trust-as-root"
	case Deny:
		return "deny"
	case Unspecified:
		return "unspecified"
	default:
		return "invalid"
	}
}
