// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package probe

import (
	"errors"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/native-certs/src/internal/helper/gc"
)

// ErrFilesystem indicates that the probed bundle could not be read.
var ErrFilesystem = errors.New("probe: filesystem failure")

// LoadPEMCerts reads the file at path and returns its bytes unmodified.
//
// Parameters:
//   - path: Location of a PEM bundle
//
// Returns:
//   - []byte: File contents
//   - error: Error wrapping [ErrFilesystem] if the file cannot be read
func LoadPEMCerts(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFilesystem, err)
	}
	defer f.Close()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrFilesystem, path, err)
	}
	return gc.Detach(buf), nil
}

// LoadNativeCerts returns the bytes of the probed CA bundle.
//
// When no bundle is found the result is an empty, non-nil slice and a nil
// error.
func (p *Prober) LoadNativeCerts() ([]byte, error) {
	r := p.Probe()
	if r.CertFile == "" {
		return []byte{}, nil
	}
	return LoadPEMCerts(r.CertFile)
}
