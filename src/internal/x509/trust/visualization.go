// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509trust

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	x509certs "github.com/H0llyW00dzZ/native-certs/src/internal/x509/certs"
)

// RootSummary describes one trusted root for JSON output.
type RootSummary struct {
	Subject      string    `json:"subject"`
	Issuer       string    `json:"issuer"`
	SerialNumber string    `json:"serialNumber"`
	NotAfter     time.Time `json:"notAfter"`
	SHA256       string    `json:"sha256"`
	Domain       string    `json:"domain"`
	Verdict      string    `json:"verdict"`
	PEM          string    `json:"pem"`
}

// BundleSummary is the JSON document produced by [Merged.ToSummaryJSON].
type BundleSummary struct {
	Timestamp string        `json:"timestamp"`
	Total     int           `json:"totalCertificates"`
	Trusted   int           `json:"trustedRoots"`
	Roots     []RootSummary `json:"roots"`
}

// title turns identifiers such as "trust-as-root" into "Trust As Root".
// A Caser is stateful, so each call gets its own.
func title(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "-", " "))
}

// ToSummaryJSON renders the trusted roots as indented JSON.
//
// Certificates that cannot be parsed are still listed with an empty subject,
// since membership does not depend on parsing.
//
// Returns:
//   - []byte: JSON document
//   - error: Error if JSON marshaling fails
func (m *Merged) ToSummaryJSON() ([]byte, error) {
	roots := m.Roots()

	summary := BundleSummary{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Total:     m.Len(),
		Trusted:   len(roots),
		Roots:     make([]RootSummary, 0, len(roots)),
	}

	for _, e := range roots {
		summary.Roots = append(summary.Roots, rootSummary(e.DER, e.Domain.String(), e.Verdict.String(), e.PEM))
	}

	return json.MarshalIndent(summary, "", "  ")
}

// CertificatesSummaryJSON renders certificates that did not come from the trust
// domains, such as a CA bundle file, in the same document layout as
// [Merged.ToSummaryJSON]. Every certificate is reported under source with a
// TrustRoot verdict.
func CertificatesSummaryJSON(certs []*x509.Certificate, source string) ([]byte, error) {
	codec := x509certs.New()
	summary := BundleSummary{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Total:     len(certs),
		Trusted:   len(certs),
		Roots:     make([]RootSummary, 0, len(certs)),
	}
	for _, cert := range certs {
		summary.Roots = append(summary.Roots,
			rootSummary(cert.Raw, source, TrustRoot.String(), string(codec.EncodePEM(cert.Raw))))
	}
	return json.MarshalIndent(summary, "", "  ")
}

func rootSummary(der []byte, domain, verdict, pemBlock string) RootSummary {
	sum := sha256.Sum256(der)
	rs := RootSummary{
		SHA256:  hex.EncodeToString(sum[:]),
		Domain:  domain,
		Verdict: verdict,
		PEM:     pemBlock,
	}
	if cert, err := x509.ParseCertificate(der); err == nil {
		rs.Subject = cert.Subject.String()
		rs.Issuer = cert.Issuer.String()
		rs.SerialNumber = cert.SerialNumber.String()
		rs.NotAfter = cert.NotAfter
	}
	return rs
}

// RenderTable renders every merged certificate as a markdown table, including
// the ones excluded from the bundle, with the deciding domain and verdict.
func (m *Merged) RenderTable() string {
	entries := m.Entries()
	if len(entries) == 0 {
		return "No certificates found in any trust domain"
	}

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		subject, notAfter := "unparseable", "-"
		if cert, err := x509.ParseCertificate(e.DER); err == nil {
			subject = commonName(cert)
			notAfter = cert.NotAfter.Format("2006-01-02")
		}

		included := "no"
		if e.Verdict.IsRoot() {
			included = "yes"
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			subject,
			title(e.Domain.String()),
			title(e.Verdict.String()),
			notAfter,
			included,
		})
	}

	return renderMarkdown([]string{"#", "Subject", "Domain", "Verdict", "Valid Until", "In Bundle"}, rows)
}

// RenderBundleTable renders decoded certificates, such as the contents of an
// exported bundle, as a markdown table.
func RenderBundleTable(certs []*x509.Certificate) string {
	if len(certs) == 0 {
		return "No certificates to display"
	}

	rows := make([][]string, 0, len(certs))
	for i, cert := range certs {
		sum := sha256.Sum256(cert.Raw)
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			commonName(cert),
			commonNameOf(cert.Issuer.CommonName, cert.Issuer.String()),
			cert.NotAfter.Format("2006-01-02"),
			hex.EncodeToString(sum[:8]),
		})
	}

	return renderMarkdown([]string{"#", "Subject", "Issuer", "Valid Until", "SHA-256 Prefix"}, rows)
}

func renderMarkdown(headers []string, rows [][]string) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header(headers)
	table.Bulk(rows)
	table.Render()
	return buf.String()
}

func commonName(cert *x509.Certificate) string {
	return commonNameOf(cert.Subject.CommonName, cert.Subject.String())
}

func commonNameOf(cn, full string) string {
	if cn != "" {
		return cn
	}
	return full
}
