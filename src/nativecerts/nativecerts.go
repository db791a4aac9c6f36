// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package nativecerts

import (
	"crypto/x509"
	"fmt"

	"github.com/H0llyW00dzZ/native-certs/src/internal/keychain"
	x509certs "github.com/H0llyW00dzZ/native-certs/src/internal/x509/certs"
	x509trust "github.com/H0llyW00dzZ/native-certs/src/internal/x509/trust"
	"github.com/H0llyW00dzZ/native-certs/src/logger"
	"github.com/H0llyW00dzZ/native-certs/src/probe"
)

// SourceTrustSettings is the [Report.Source] of bundles resolved from trust
// settings domains.
const SourceTrustSettings = "trust-settings"

type options struct {
	log          logger.Logger
	store        x509trust.Store
	probeDirs    []string
	securityPath string
}

// Option configures [Load] and [Inspect].
type Option func(*options)

// WithLogger sets the logger for progress messages.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithProbeDirs adds directories searched for a CA bundle before the
// well-known ones. It has no effect when trust settings are used.
func WithProbeDirs(dirs ...string) Option {
	return func(o *options) { o.probeDirs = append(o.probeDirs, dirs...) }
}

// WithSecurityPath sets the macOS security binary used to read trust settings.
func WithSecurityPath(path string) Option {
	return func(o *options) { o.securityPath = path }
}

// WithStore resolves the bundle from store instead of the platform default.
func WithStore(store x509trust.Store) Option {
	return func(o *options) { o.store = store }
}

func newOptions(opts []Option) *options {
	o := &options{log: logger.Discard}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) keychain() x509trust.Store {
	return keychain.New(
		keychain.WithSecurityPath(o.securityPath),
		keychain.WithLogger(logger.WithPrefix(o.log, "keychain: ")),
	)
}

// Load returns the host's trusted root certificates as one PEM bundle.
//
// Parameters:
//   - opts: Optional configuration
//
// Returns:
//   - []byte: Concatenated PEM blocks; empty, never nil, when there are none
//   - error: Error wrapping [x509trust.ErrStoreAccess] or [probe.ErrFilesystem]
func Load(opts ...Option) ([]byte, error) {
	r, err := Inspect(opts...)
	if err != nil {
		return nil, err
	}
	return r.Bundle, nil
}

// Inspect loads the bundle like [Load] and keeps the details needed to
// describe it.
func Inspect(opts ...Option) (*Report, error) {
	o := newOptions(opts)

	store := o.store
	if store == nil {
		store = platformStore(o)
	}
	if store != nil {
		return resolve(store, o)
	}
	return probeBundle(o)
}

func resolve(store x509trust.Store, o *options) (*Report, error) {
	merged, err := x509trust.New(store, x509trust.WithLogger(logger.WithPrefix(o.log, "x509trust: "))).Merge()
	if err != nil {
		return nil, err
	}
	return &Report{
		Bundle: merged.Bundle(),
		Source: SourceTrustSettings,
		merged: merged,
	}, nil
}

func probeBundle(o *options) (*Report, error) {
	log := logger.WithPrefix(o.log, "probe: ")
	p := probe.New(probe.WithExtraDirs(o.probeDirs...))
	found := p.Probe()
	if found.CertFile == "" {
		log.Println("no CA bundle found")
		return &Report{Bundle: []byte{}}, nil
	}

	log.Printf("loading CA bundle from %s", found.CertFile)
	bundle, err := probe.LoadPEMCerts(found.CertFile)
	if err != nil {
		return nil, err
	}
	return &Report{Bundle: bundle, Source: found.CertFile}, nil
}

// Report is the outcome of one load.
type Report struct {
	// Bundle holds the PEM blocks returned by [Load].
	Bundle []byte
	// Source is [SourceTrustSettings], the path of the probed bundle, or
	// empty when nothing was found.
	Source string

	merged *x509trust.Merged
}

// JSON describes every certificate in the bundle as an indented JSON document.
func (r *Report) JSON() ([]byte, error) {
	if r.merged != nil {
		return r.merged.ToSummaryJSON()
	}
	certs, err := r.certificates()
	if err != nil {
		return nil, err
	}
	return x509trust.CertificatesSummaryJSON(certs, r.Source)
}

// Table renders the certificates as a markdown table. For trust settings it
// also lists the certificates that were excluded and why.
func (r *Report) Table() (string, error) {
	if r.merged != nil {
		return r.merged.RenderTable(), nil
	}
	certs, err := r.certificates()
	if err != nil {
		return "", err
	}
	return x509trust.RenderBundleTable(certs), nil
}

// Count returns the number of certificates in the bundle.
func (r *Report) Count() (int, error) {
	if r.merged != nil {
		return len(r.merged.Roots()), nil
	}
	certs, err := r.certificates()
	return len(certs), err
}

func (r *Report) certificates() ([]*x509.Certificate, error) {
	if len(r.Bundle) == 0 {
		return nil, nil
	}
	certs, err := x509certs.New().DecodeMultiple(r.Bundle)
	if err != nil {
		return nil, fmt.Errorf("decoding bundle from %s: %w", r.Source, err)
	}
	return certs, nil
}
