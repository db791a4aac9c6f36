// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package keychain

import (
	"bytes"
	"fmt"

	"howett.net/plist"

	x509trust "github.com/H0llyW00dzZ/native-certs/src/internal/x509/trust"
)

const sslPolicyName = "sslServer"

// sslPolicyOID is the content octets of the Apple SSL policy OID
// 1.2.840.113635.100.1.3.
var sslPolicyOID = []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x63, 0x64, 0x01, 0x03}

// trustSettingsFile is the document written by "security trust-settings-export".
type trustSettingsFile struct {
	TrustList    map[string]trustEntry `plist:"trustList"`
	TrustVersion int                   `plist:"trustVersion"`
}

// trustEntry holds one certificate's settings, keyed in the trust list by the
// uppercase hex SHA-1 of the certificate.
type trustEntry struct {
	IssuerName    []byte            `plist:"issuerName"`
	SerialNumber  []byte            `plist:"serialNumber"`
	TrustSettings []usageConstraint `plist:"trustSettings"`
}

// usageConstraint is a single dictionary of a certificate's trust settings array.
type usageConstraint struct {
	Policy       []byte `plist:"kSecTrustSettingsPolicy"`
	PolicyName   string `plist:"kSecTrustSettingsPolicyName"`
	PolicyString string `plist:"kSecTrustSettingsPolicyString"`
	Result       *int   `plist:"kSecTrustSettingsResult"`
	AllowedError *int   `plist:"kSecTrustSettingsAllowedError"`
	KeyUsage     *int   `plist:"kSecTrustSettingsKeyUsage"`
}

// parseTrustSettings decodes an XML or binary trust settings property list.
func parseTrustSettings(data []byte) (*trustSettingsFile, error) {
	var f trustSettingsFile
	if _, err := plist.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding trust settings: %w", err)
	}
	if f.TrustList == nil {
		f.TrustList = map[string]trustEntry{}
	}
	return &f, nil
}

// appliesToTLS reports whether the constraint governs TLS server trust.
// A constraint without any policy applies to every policy.
func (u usageConstraint) appliesToTLS() bool {
	if u.PolicyName != "" {
		return u.PolicyName == sslPolicyName
	}
	if len(u.Policy) > 0 {
		return bytes.Equal(oidContent(u.Policy), sslPolicyOID)
	}
	return true
}

// oidContent strips a DER OBJECT IDENTIFIER header if one is present.
func oidContent(b []byte) []byte {
	if len(b) >= 2 && b[0] == 0x06 && int(b[1]) == len(b)-2 {
		return b[2:]
	}
	return b
}

// tlsVerdict evaluates a trust settings array for the TLS server policy.
//
// Constraints for other policies are skipped. A matching constraint without a
// result means TrustRoot; Unspecified and Invalid results defer to the next
// constraint. ok is false when no constraint decides.
func tlsVerdict(constraints []usageConstraint) (v x509trust.Verdict, ok bool) {
	for _, c := range constraints {
		if !c.appliesToTLS() {
			continue
		}

		v = x509trust.TrustRoot
		if c.Result != nil {
			v = x509trust.ParseVerdict(*c.Result)
		}

		switch v {
		case x509trust.Unspecified, x509trust.Invalid:
			continue
		}
		return v, true
	}
	return x509trust.Invalid, false
}
