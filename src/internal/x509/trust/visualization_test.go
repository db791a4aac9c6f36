// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509trust_test

import (
	"crypto/x509"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/native-certs/src/internal/testutil"
	x509trust "github.com/H0llyW00dzZ/native-certs/src/internal/x509/trust"
)

func TestCertificatesSummaryJSON(t *testing.T) {
	a := testutil.SelfSigned(t, "Bundle Root A")
	b := testutil.SelfSigned(t, "Bundle Root B")

	data, err := x509trust.CertificatesSummaryJSON([]*x509.Certificate{a, b}, "/etc/ssl/cert.pem")
	require.NoError(t, err)

	var summary x509trust.BundleSummary
	require.NoError(t, json.Unmarshal(data, &summary))

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Trusted)
	require.Len(t, summary.Roots, 2)
	for _, r := range summary.Roots {
		assert.Equal(t, "/etc/ssl/cert.pem", r.Domain)
		assert.Equal(t, "trust-root", r.Verdict)
		assert.True(t, strings.HasPrefix(r.PEM, "-----BEGIN CERTIFICATE-----\n"))
		assert.Len(t, r.SHA256, 64)
	}
	assert.Contains(t, summary.Roots[1].Subject, "Bundle Root B")
}

func TestCertificatesSummaryJSON_Empty(t *testing.T) {
	data, err := x509trust.CertificatesSummaryJSON(nil, "none")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"roots": []`)
}

func TestRenderBundleTable(t *testing.T) {
	tests := []struct {
		name  string
		certs []*x509.Certificate
		want  []string
	}{
		{
			name: "empty",
			want: []string{"No certificates to display"},
		},
		{
			name:  "rows",
			certs: []*x509.Certificate{testutil.SelfSigned(t, "Table Root")},
			want:  []string{"Table Root", "|"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := x509trust.RenderBundleTable(tt.certs)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}
