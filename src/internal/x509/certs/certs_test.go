// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"encoding/base64"
	"encoding/pem"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/native-certs/src/internal/testutil"
	x509certs "github.com/H0llyW00dzZ/native-certs/src/internal/x509/certs"
)

const (
	invalidPEM = `
-----BEGIN INVALID-----
MIIEmTCCBD+gAwIBAgIRANFjRCmF+Y2bUYHbhxwkEpowCgYIKoZIzj0EAwIwgY8x
-----END INVALID-----
`

	invalidCERT = `
-----BEGIN CERTIFICATE-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAz6e5VV5F8rF2sFJ0Q4vA
-----END CERTIFICATE-----
`
)

func TestCertificate_EncodePEM(t *testing.T) {
	codec := x509certs.New()

	tests := []struct {
		name string
		der  []byte
		want string
	}{
		{
			name: "Padded base64",
			der:  []byte{0x30, 0x03, 0x02, 0x01, 0x01},
			want: "-----BEGIN CERTIFICATE-----\nMAMCAQE=\n-----END CERTIFICATE-----\n",
		},
		{
			name: "Empty DER",
			der:  []byte{},
			want: "-----BEGIN CERTIFICATE-----\n\n-----END CERTIFICATE-----\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(codec.EncodePEM(tt.der)))
		})
	}
}

func TestCertificate_EncodePEM_SingleLineBody(t *testing.T) {
	codec := x509certs.New()
	cert := testutil.SelfSigned(t, "Single Line Root")

	encoded := string(codec.EncodeCertificatePEM(cert))
	lines := strings.Split(strings.TrimSuffix(encoded, "\n"), "\n")

	require.Len(t, lines, 3, "body must not be wrapped")
	assert.Equal(t, "-----BEGIN CERTIFICATE-----", lines[0])
	assert.Equal(t, base64.StdEncoding.EncodeToString(cert.Raw), lines[1])
	assert.Equal(t, "-----END CERTIFICATE-----", lines[2])
	assert.Greater(t, len(lines[1]), 64, "test certificate should exceed one wrapped PEM line")
}

func TestCertificate_RoundTrip(t *testing.T) {
	codec := x509certs.New()
	cert := testutil.SelfSigned(t, "Round Trip Root")

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "encoding/pem accepts unwrapped body",
			testFunc: func(t *testing.T) {
				block, rest := pem.Decode(codec.EncodeCertificatePEM(cert))
				require.NotNil(t, block)
				assert.Empty(t, rest)
				assert.Equal(t, "CERTIFICATE", block.Type)
				assert.Equal(t, cert.Raw, block.Bytes)
			},
		},
		{
			name: "Decode PEM",
			testFunc: func(t *testing.T) {
				decoded, err := codec.Decode(codec.EncodeCertificatePEM(cert))
				require.NoError(t, err)
				assert.True(t, cert.Equal(decoded))
			},
		},
		{
			name: "Decode DER",
			testFunc: func(t *testing.T) {
				decoded, err := codec.Decode(codec.EncodeDER(cert))
				require.NoError(t, err)
				assert.True(t, cert.Equal(decoded))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestCertificate_EncodeMultiplePEM(t *testing.T) {
	codec := x509certs.New()
	first := testutil.SelfSigned(t, "First Root")
	second := testutil.SelfSigned(t, "Second Root")

	t.Run("Concatenates without separators", func(t *testing.T) {
		got := codec.EncodeMultiplePEM([][]byte{first.Raw, second.Raw})
		want := append(codec.EncodePEM(first.Raw), codec.EncodePEM(second.Raw)...)
		assert.Equal(t, want, got)
		assert.NotContains(t, string(got), "\n\n")
	})

	t.Run("Empty list", func(t *testing.T) {
		got := codec.EncodeMultiplePEM(nil)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestCertificate_DecodeMultiple(t *testing.T) {
	codec := x509certs.New()
	first := testutil.SelfSigned(t, "First Root")
	second := testutil.SelfSigned(t, "Second Root")

	tests := []struct {
		name        string
		input       []byte
		expectCount int
		expectError error
	}{
		{
			name:        "PEM bundle",
			input:       codec.EncodeMultiplePEM([][]byte{first.Raw, second.Raw}),
			expectCount: 2,
		},
		{
			name:        "Concatenated DER",
			input:       append(append([]byte{}, first.Raw...), second.Raw...),
			expectCount: 2,
		},
		{
			name:        "Invalid PEM Type",
			input:       []byte(invalidPEM),
			expectError: x509certs.ErrInvalidBlockType,
		},
		{
			name:        "Invalid Certificate Data",
			input:       []byte(invalidCERT),
			expectError: x509certs.ErrParseCertificate,
		},
		{
			name:        "Garbage",
			input:       []byte("not a certificate"),
			expectError: x509certs.ErrParseCertificate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			certs, err := codec.DecodeMultiple(tt.input)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				return
			}

			require.NoError(t, err)
			assert.Len(t, certs, tt.expectCount)
		})
	}
}

func TestCertificate_Decode_Invalid(t *testing.T) {
	codec := x509certs.New()

	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "Invalid PEM Block", input: invalidPEM, expected: x509certs.ErrInvalidBlockType},
		{name: "Not DER or PKCS7", input: "not a certificate", expected: x509certs.ErrParsePKCS7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode([]byte(tt.input))
			assert.Equal(t, tt.expected, err)
		})
	}
}

func TestCertificate_IsPEM(t *testing.T) {
	codec := x509certs.New()
	cert := testutil.SelfSigned(t, "PEM Root")

	tests := []struct {
		name     string
		input    []byte
		expected bool
	}{
		{name: "Valid PEM", input: codec.EncodeCertificatePEM(cert), expected: true},
		{name: "DER", input: cert.Raw, expected: false},
		{name: "Empty", input: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, codec.IsPEM(tt.input))
		})
	}
}
