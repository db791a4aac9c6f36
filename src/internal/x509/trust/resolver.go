// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509trust

import (
	x509certs "github.com/H0llyW00dzZ/native-certs/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/native-certs/src/logger"
)

// Resolver merges the trust domains of a [Store] into one trusted-root set.
//
// A Resolver holds no per-call state; concurrent calls each build their own
// merged record and open their own domain handles.
type Resolver struct {
	store Store
	codec *x509certs.Certificate
	log   logger.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for per-domain progress messages.
func WithLogger(l logger.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates a Resolver over store.
//
// Parameters:
//   - store: Source of trust domains
//   - opts: Optional configuration
//
// Returns:
//   - *Resolver: New Resolver instance
func New(store Store, opts ...Option) *Resolver {
	r := &Resolver{
		store: store,
		codec: x509certs.New(),
		log:   logger.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Merge walks every domain in [Domains] order and records each certificate
// under the verdict of the first domain that enumerates it.
//
// Existing entries are never overwritten or compared. Any failure to open a
// domain or to query a verdict aborts the merge; no partial result is
// returned.
//
// Returns:
//   - *Merged: One entry per unique certificate
//   - error: Error wrapping [ErrStoreAccess] on failure
func (r *Resolver) Merge() (*Merged, error) {
	merged := newMerged(r.codec)

	for _, domain := range Domains() {
		settings, err := r.store.Open(domain)
		if err != nil {
			return nil, storeError(domain, "open", err)
		}

		var seen, added int
		for cert := range settings.Certificates() {
			seen++
			der := cert.DER()

			verdict, ok, err := settings.TLSVerdict(cert)
			if err != nil {
				return nil, storeError(domain, "query verdict in", err)
			}
			if !ok {
				// No explicit setting: an empty trust settings array means
				// "always trust this certificate as a root".
				verdict = TrustRoot
			}

			if merged.insert(domain, verdict, der) {
				added++
			}
		}

		r.log.Printf("%s domain: %d certificates enumerated, %d new", domain, seen, added)
	}

	return merged, nil
}

// Resolve merges all domains and returns the trusted-root PEM bundle.
//
// An empty store yields an empty, non-nil buffer.
func (r *Resolver) Resolve() ([]byte, error) {
	merged, err := r.Merge()
	if err != nil {
		return nil, err
	}

	bundle := merged.Bundle()
	r.log.Printf("trusted roots: %d of %d certificates", len(merged.Roots()), merged.Len())
	return bundle, nil
}
