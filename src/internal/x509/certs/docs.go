// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides encoding and decoding operations for [X.509] certificates.
//
// Encoding always produces the bundle form consumed by TLS clients: one
// "CERTIFICATE" block per certificate with the base64 body on a single,
// unwrapped line. Decoding accepts [PEM], DER, and [PKCS7] input so exported
// bundles and vendor-supplied .p7b files can be inspected.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
