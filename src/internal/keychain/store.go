// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package keychain

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"iter"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	x509trust "github.com/H0llyW00dzZ/native-certs/src/internal/x509/trust"
	"github.com/H0llyW00dzZ/native-certs/src/logger"
)

const (
	// DefaultSecurityPath is the location of the macOS security tool.
	DefaultSecurityPath = "/usr/bin/security"

	// SystemRootsKeychain holds the certificates of the System domain.
	SystemRootsKeychain = "/System/Library/Keychains/SystemRootCertificates.keychain"

	noTrustSettings = "No Trust Settings were found"
)

// Store implements [x509trust.Store] on top of the security tool.
type Store struct {
	runner   Runner
	security string
	roots    string
	tempDir  string
	log      logger.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(s *Store) {
		if r != nil {
			s.runner = r
		}
	}
}

// WithSecurityPath sets the path of the security binary.
func WithSecurityPath(path string) Option {
	return func(s *Store) {
		if path != "" {
			s.security = path
		}
	}
}

// WithSystemRootsKeychain sets the keychain enumerated for the System domain.
func WithSystemRootsKeychain(path string) Option {
	return func(s *Store) {
		if path != "" {
			s.roots = path
		}
	}
}

// WithTempDir sets the directory that receives exported trust settings.
func WithTempDir(dir string) Option {
	return func(s *Store) { s.tempDir = dir }
}

// WithLogger sets the logger for skipped certificates.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Store that runs [DefaultSecurityPath] through [ExecRunner].
func New(opts ...Option) *Store {
	s := &Store{
		runner:   ExecRunner{},
		security: DefaultSecurityPath,
		roots:    SystemRootsKeychain,
		log:      logger.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open exports the trust settings of domain d and locates the certificates
// they refer to. Every call runs the security tool again.
//
// Parameters:
//   - d: Trust domain to open
//
// Returns:
//   - x509trust.Settings: Snapshot of the domain
//   - error: Error wrapping [x509trust.ErrStoreAccess] on failure
func (s *Store) Open(d x509trust.Domain) (x509trust.Settings, error) {
	trust, err := s.exportTrustSettings(d)
	if err != nil {
		return nil, err
	}

	settings := &domainSettings{trust: trust.TrustList}

	if d == x509trust.System {
		certs, err := s.findCertificates(s.roots)
		if err != nil {
			return nil, err
		}
		settings.certs = certs
		return settings, nil
	}

	if len(trust.TrustList) == 0 {
		return settings, nil
	}

	// The search list covers login and System keychains; the roots keychain
	// is added because user and admin settings may override a system root.
	searchList, err := s.findCertificates("")
	if err != nil {
		return nil, err
	}
	roots, err := s.findCertificates(s.roots)
	if err != nil {
		return nil, err
	}

	index := make(map[string]certificate, len(searchList)+len(roots))
	for _, c := range slices.Concat(searchList, roots) {
		if _, ok := index[c.sha1]; !ok {
			index[c.sha1] = c
		}
	}

	for _, fp := range slices.Sorted(maps.Keys(trust.TrustList)) {
		c, ok := index[strings.ToUpper(fp)]
		if !ok {
			s.log.Printf("%s domain: no certificate found for trust settings entry %s, skipping", d, fp)
			continue
		}
		settings.certs = append(settings.certs, c)
	}
	return settings, nil
}

// exportTrustSettings writes the trust settings of d to a temporary file and
// decodes it. A domain without trust settings yields an empty list.
func (s *Store) exportTrustSettings(d x509trust.Domain) (*trustSettingsFile, error) {
	dir, err := os.MkdirTemp(s.tempDir, "native-certs-")
	if err != nil {
		return nil, fmt.Errorf("%w: creating export directory: %w", x509trust.ErrStoreAccess, err)
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "trust-settings.plist")
	args := []string{"trust-settings-export"}
	switch d {
	case x509trust.Admin:
		args = append(args, "-d")
	case x509trust.System:
		args = append(args, "-s")
	}
	args = append(args, file)

	if _, err := s.runner.Output(s.security, args...); err != nil {
		if strings.Contains(err.Error(), noTrustSettings) {
			return &trustSettingsFile{TrustList: map[string]trustEntry{}}, nil
		}
		return nil, fmt.Errorf("%w: exporting %s trust settings: %w", x509trust.ErrStoreAccess, d, err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s trust settings: %w", x509trust.ErrStoreAccess, d, err)
	}

	trust, err := parseTrustSettings(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s domain: %w", x509trust.ErrStoreAccess, d, err)
	}
	return trust, nil
}

// findCertificates lists the certificates of keychain, or of the default
// search list when keychain is empty. Duplicates keep their first position.
func (s *Store) findCertificates(keychain string) ([]certificate, error) {
	args := []string{"find-certificate", "-a", "-p"}
	if keychain != "" {
		args = append(args, keychain)
	}

	out, err := s.runner.Output(s.security, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listing certificates: %w", x509trust.ErrStoreAccess, err)
	}

	var (
		certs []certificate
		seen  = make(map[string]struct{})
		rest  = out
	)
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}

		c := newCertificate(block.Bytes)
		if _, dup := seen[c.sha1]; dup {
			continue
		}
		seen[c.sha1] = struct{}{}
		certs = append(certs, c)
	}
	return certs, nil
}

// certificate is a keychain item together with its trust list key.
type certificate struct {
	der  []byte
	sha1 string
}

func newCertificate(der []byte) certificate {
	sum := sha1.Sum(der)
	return certificate{der: der, sha1: strings.ToUpper(hex.EncodeToString(sum[:]))}
}

// DER returns the certificate encoding.
func (c certificate) DER() []byte { return c.der }

// domainSettings is the snapshot returned by [Store.Open].
type domainSettings struct {
	certs []certificate
	trust map[string]trustEntry
}

// Certificates yields the domain's certificates in a stable order.
func (s *domainSettings) Certificates() iter.Seq[x509trust.Certificate] {
	return func(yield func(x509trust.Certificate) bool) {
		for _, c := range s.certs {
			if !yield(c) {
				return
			}
		}
	}
}

// TLSVerdict evaluates the trust settings recorded for cert.
func (s *domainSettings) TLSVerdict(cert x509trust.Certificate) (x509trust.Verdict, bool, error) {
	var fp string
	if c, ok := cert.(certificate); ok {
		fp = c.sha1
	} else {
		fp = newCertificate(cert.DER()).sha1
	}

	entry, ok := s.lookup(fp)
	if !ok {
		return x509trust.Invalid, false, nil
	}

	v, ok := tlsVerdict(entry.TrustSettings)
	return v, ok, nil
}

func (s *domainSettings) lookup(fp string) (trustEntry, bool) {
	if e, ok := s.trust[fp]; ok {
		return e, true
	}
	for k, e := range s.trust {
		if strings.EqualFold(k, fp) {
			return e, true
		}
	}
	return trustEntry{}, false
}
