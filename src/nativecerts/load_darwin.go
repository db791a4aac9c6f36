// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build darwin

package nativecerts

import x509trust "github.com/H0llyW00dzZ/native-certs/src/internal/x509/trust"

func platformStore(o *options) x509trust.Store { return o.keychain() }
