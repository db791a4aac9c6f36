// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509trust

import (
	"errors"
	"fmt"
	"iter"
)

// ErrStoreAccess indicates that a trust domain could not be opened or that a
// verdict query failed at the OS layer.
var ErrStoreAccess = errors.New("x509trust: store access failed")

// Certificate is a certificate handle yielded by a trust domain.
type Certificate interface {
	// DER returns the certificate's DER encoding.
	DER() []byte
}

// Settings is an opened trust domain.
type Settings interface {
	// Certificates yields every certificate the domain enumerates.
	// The sequence is finite and is consumed once.
	Certificates() iter.Seq[Certificate]

	// TLSVerdict returns the domain's verdict for cert under the TLS server
	// policy. ok is false when the domain holds no explicit setting that
	// applies; that is not an error.
	TLSVerdict(cert Certificate) (v Verdict, ok bool, err error)
}

// Store opens trust domains.
//
// Every call to Open must return a fresh handle; implementations must not
// cache handles across calls.
type Store interface {
	Open(d Domain) (Settings, error)
}

// DER is a Certificate backed by a plain DER byte slice.
type DER []byte

// DER returns the encoding itself.
func (d DER) DER() []byte { return d }

// storeError classifies err as a store access failure for domain d.
func storeError(d Domain, op string, err error) error {
	if errors.Is(err, ErrStoreAccess) {
		return fmt.Errorf("%s %s domain: %w", op, d, err)
	}
	return fmt.Errorf("%w: %s %s domain: %w", ErrStoreAccess, op, d, err)
}
