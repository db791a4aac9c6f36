// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads native-certs settings from a JSON or YAML file.
//
// The format is chosen by file extension (.json, .yaml, .yml). Documents are
// checked against an embedded JSON Schema before they are applied on top of
// the defaults, so misspelled keys are reported instead of silently ignored.
//
// Example configuration (YAML):
//
//	output:
//	  format: table
//	probe:
//	  extraDirs:
//	    - /opt/company/ssl
//	keychain:
//	  securityPath: /usr/bin/security
//	log:
//	  verbose: true
package config
