// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package probe

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Environment variables that override probing.
const (
	EnvCertFile = "SSL_CERT_FILE"
	EnvCertDir  = "SSL_CERT_DIR"
)

// certDirs are the directories OpenSSL distributions install into.
var certDirs = []string{
	"/var/ssl",
	"/usr/share/ssl",
	"/usr/local/ssl",
	"/usr/local/openssl",
	"/usr/local/etc/openssl",
	"/usr/local/share",
	"/usr/lib/ssl",
	"/usr/ssl",
	"/etc/openssl",
	"/etc/pki/ca-trust/extracted/pem",
	"/etc/pki/tls",
	"/etc/ssl",
	"/etc/certs",
	"/opt/etc/ssl",                            // Entware
	"/data/data/com.termux/files/usr/etc/tls", // Termux
	"/boot/system/data/ssl",                   // Haiku
}

// certFiles are bundle names relative to a directory in certDirs.
var certFiles = []string{
	"cert.pem",
	"certs.pem",
	"ca-bundle.pem",
	"cacert.pem",
	"ca-certificates.crt",
	"certs/ca-certificates.crt",
	"certs/ca-root-nss.crt",
	"certs/ca-bundle.crt",
	"CARootCertificates.pem",
	"tls-ca-bundle.pem",
}

// Result holds the probed locations. Empty fields were not found.
type Result struct {
	CertFile string `json:"cert_file,omitempty" yaml:"cert_file,omitempty"`
	CertDir  string `json:"cert_dir,omitempty" yaml:"cert_dir,omitempty"`
}

// Prober searches the filesystem for a CA bundle.
type Prober struct {
	getenv    func(string) string
	stat      func(string) (fs.FileInfo, error)
	dirs      []string
	extraDirs []string
}

// Option configures a Prober.
type Option func(*Prober)

// WithDirs replaces the well-known directory list.
func WithDirs(dirs ...string) Option {
	return func(p *Prober) { p.dirs = dirs }
}

// WithExtraDirs adds directories searched before the well-known ones.
func WithExtraDirs(dirs ...string) Option {
	return func(p *Prober) { p.extraDirs = append(p.extraDirs, dirs...) }
}

// WithGetenv replaces the environment lookup.
func WithGetenv(getenv func(string) string) Option {
	return func(p *Prober) {
		if getenv != nil {
			p.getenv = getenv
		}
	}
}

// New creates a Prober over the real environment and filesystem.
func New(opts ...Option) *Prober {
	p := &Prober{
		getenv: os.Getenv,
		stat:   os.Stat,
		dirs:   certDirs,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dirs returns the directories Probe searches, in order.
func (p *Prober) Dirs() []string {
	return append(append([]string(nil), p.extraDirs...), p.dirs...)
}

// Probe looks up the CA bundle file and certificate directory.
//
// Environment overrides are honored only when the path exists. The first
// existing directory that contains a known bundle name provides CertFile, and
// the first existing directory with a "certs" child provides CertDir.
//
// Returns:
//   - Result: Probed locations, possibly empty
func (p *Prober) Probe() Result {
	var r Result
	if v := p.getenv(EnvCertFile); v != "" && p.exists(v) {
		r.CertFile = v
	}
	if v := p.getenv(EnvCertDir); v != "" && p.exists(v) {
		r.CertDir = v
	}

	for _, dir := range p.Dirs() {
		if r.CertFile != "" && r.CertDir != "" {
			break
		}
		if !p.exists(dir) {
			continue
		}

		if r.CertFile == "" {
			for _, name := range certFiles {
				if f := filepath.Join(dir, name); p.exists(f) {
					r.CertFile = f
					break
				}
			}
		}
		if r.CertDir == "" {
			if d := filepath.Join(dir, "certs"); p.exists(d) {
				r.CertDir = d
			}
		}
	}
	return r
}

func (p *Prober) exists(path string) bool {
	_, err := p.stat(path)
	return err == nil
}
