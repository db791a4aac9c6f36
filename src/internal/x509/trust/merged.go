// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509trust

import (
	"slices"
	"strings"

	x509certs "github.com/H0llyW00dzZ/native-certs/src/internal/x509/certs"
)

// Entry is the recorded decision for one unique certificate.
type Entry struct {
	// Domain is the highest-precedence domain that enumerated the certificate.
	Domain Domain
	// Verdict is the verdict that domain attached.
	Verdict Verdict
	// DER is the certificate encoding.
	DER []byte
	// PEM is the single PEM block derived from DER.
	PEM string
}

// Merged maps every unique certificate, keyed by its PEM block, to the
// decision recorded for it. It is built once per resolution.
type Merged struct {
	codec   *x509certs.Certificate
	entries map[string]Entry
}

func newMerged(codec *x509certs.Certificate) *Merged {
	return &Merged{
		codec:   codec,
		entries: make(map[string]Entry),
	}
}

// insert records der unless it is already present. It reports whether a new
// entry was created.
func (m *Merged) insert(d Domain, v Verdict, der []byte) bool {
	pem := string(m.codec.EncodePEM(der))
	if _, exists := m.entries[pem]; exists {
		return false
	}

	m.entries[pem] = Entry{
		Domain:  d,
		Verdict: v,
		DER:     slices.Clone(der),
		PEM:     pem,
	}
	return true
}

// Len returns the number of unique certificates across all domains.
func (m *Merged) Len() int { return len(m.entries) }

// Lookup returns the entry recorded for der.
func (m *Merged) Lookup(der []byte) (Entry, bool) {
	e, ok := m.entries[string(m.codec.EncodePEM(der))]
	return e, ok
}

// Entries returns every recorded entry sorted by PEM text.
func (m *Merged) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.PEM, b.PEM) })
	return out
}

// Roots returns the entries admitted as trusted roots, sorted by PEM text.
func (m *Merged) Roots() []Entry {
	return slices.DeleteFunc(m.Entries(), func(e Entry) bool { return !e.Verdict.IsRoot() })
}

// Bundle concatenates the PEM blocks of every trusted root.
// The result is empty, never nil, when there are none.
func (m *Merged) Bundle() []byte {
	roots := m.Roots()
	ders := make([][]byte, len(roots))
	for i, e := range roots {
		ders[i] = e.DER
	}
	return m.codec.EncodeMultiplePEM(ders)
}
