// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"

	"github.com/H0llyW00dzZ/native-certs/src/internal/helper/gc"
	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")
	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")
	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")
	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")
	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")
)

// Certificate provides methods to decode and encode [X.509] certificates.
// It maintains internal configuration such as the certificate block type.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Certificate struct {
	certBlockType string
	header        string
	footer        string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: "CERTIFICATE",
		header:        "-----BEGIN CERTIFICATE-----\n",
		footer:        "\n-----END CERTIFICATE-----\n",
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock decodes a PEM block and checks its type.
func (c *Certificate) decodePEMBlock(data []byte) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if block.Type != c.certBlockType {
		return nil, ErrInvalidBlockType
	}
	return block, nil
}

// Decode decodes a single certificate from PEM, DER, or PKCS7 data.
// For PKCS7 input the first embedded certificate is returned.
func (c *Certificate) Decode(data []byte) (*x509.Certificate, error) {
	if c.IsPEM(data) {
		block, err := c.decodePEMBlock(data)
		if err != nil {
			return nil, err
		}
		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	certs, err := c.decodePKCS7(data)
	if err != nil {
		return nil, err
	}
	return certs[0], nil
}

// DecodeMultiple decodes every certificate contained in data.
//
// PEM input may hold any number of "CERTIFICATE" blocks; any other block type
// is rejected. Non-PEM input is parsed as concatenated DER and, failing that,
// as a PKCS7 bundle.
func (c *Certificate) DecodeMultiple(data []byte) ([]*x509.Certificate, error) {
	if c.IsPEM(data) {
		var certs []*x509.Certificate
		for len(data) > 0 {
			block, rest := pem.Decode(data)
			if block == nil {
				break
			}
			if block.Type != c.certBlockType {
				return nil, ErrInvalidBlockType
			}
			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, ErrParseCertificate
			}
			certs = append(certs, cert)
			data = rest
		}
		return certs, nil
	}

	certs, err := x509.ParseCertificates(data)
	if err == nil {
		return certs, nil
	}

	certs, err = c.decodePKCS7(data)
	if err != nil {
		if errors.Is(err, ErrParsePKCS7) {
			return nil, ErrParseCertificate
		}
		return nil, err
	}
	return certs, nil
}

// decodePKCS7 extracts the certificates carried in a PKCS7 SignedData structure
// using Cloudflare's parser.
func (c *Certificate) decodePKCS7(data []byte) ([]*x509.Certificate, error) {
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}
	return p.Content.SignedData.Certificates, nil
}

// EncodePEM encodes a DER certificate to a single PEM block.
//
// The block is the header line, the standard padded base64 of der on one
// line, the footer line, and a trailing newline. It is a pure function of der.
func (c *Certificate) EncodePEM(der []byte) []byte {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	c.writePEM(buf, der)
	return gc.Detach(buf)
}

// EncodeCertificatePEM encodes a parsed certificate to a single PEM block.
func (c *Certificate) EncodeCertificatePEM(cert *x509.Certificate) []byte {
	return c.EncodePEM(cert.Raw)
}

// EncodeMultiplePEM concatenates the PEM blocks of every DER certificate.
// There is no separator beyond each block's own trailing newline.
// An empty input yields an empty, non-nil slice.
func (c *Certificate) EncodeMultiplePEM(ders [][]byte) []byte {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for _, der := range ders {
		c.writePEM(buf, der)
	}
	return gc.Detach(buf)
}

// EncodeDER encodes a certificate to DER format.
func (c *Certificate) EncodeDER(cert *x509.Certificate) []byte { return cert.Raw }

func (c *Certificate) writePEM(buf gc.Buffer, der []byte) {
	body := make([]byte, base64.StdEncoding.EncodedLen(len(der)))
	base64.StdEncoding.Encode(body, der)

	buf.WriteString(c.header)
	buf.Write(body)
	buf.WriteString(c.footer)
}
