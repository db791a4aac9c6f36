// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable consulted when no path is given.
const EnvConfigFile = "NATIVE_CERTS_CONFIG_FILE"

// Output formats.
const (
	FormatPEM   = "pem"
	FormatJSON  = "json"
	FormatTable = "table"
)

// ErrInvalidConfig indicates that a configuration document failed schema validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

//go:embed schema.json
var schema string

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config represents the native-certs configuration structure.
type Config struct {
	// Output: How the bundle is written
	Output struct {
		// Format: One of pem, json or table
		Format string `json:"format" yaml:"format"`
		// File: Destination path; empty means stdout
		File string `json:"file,omitempty" yaml:"file,omitempty"`
	} `json:"output" yaml:"output"`

	// Probe: CA bundle discovery on systems without trust settings
	Probe struct {
		// ExtraDirs: Directories searched before the well-known ones
		ExtraDirs []string `json:"extraDirs,omitempty" yaml:"extraDirs,omitempty"`
	} `json:"probe" yaml:"probe"`

	// Keychain: macOS trust settings access
	Keychain struct {
		// SecurityPath: Location of the security tool
		SecurityPath string `json:"securityPath,omitempty" yaml:"securityPath,omitempty"`
	} `json:"keychain" yaml:"keychain"`

	// Log: Diagnostic output
	Log struct {
		// Verbose: Print per-domain progress to stderr
		Verbose bool `json:"verbose" yaml:"verbose"`
	} `json:"log" yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.Output.Format = FormatPEM
	return c
}

// detectFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; anything other than .yaml or .yml is JSON.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// unmarshal decodes data in the given format into v.
func unmarshal(data []byte, v any, f format) error {
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// validate checks a decoded document against the embedded schema.
func validate(doc any) error {
	if doc == nil {
		return nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Parse decodes and validates a configuration document whose format is
// inferred from name, and applies it on top of the defaults.
//
// Parameters:
//   - name: File name used to detect the format
//   - data: Raw document
//
// Returns:
//   - *Config: Configuration with defaults applied
//   - error: Parse error or error wrapping [ErrInvalidConfig]
func Parse(name string, data []byte) (*Config, error) {
	f := detectFormat(name)

	var doc any
	if err := unmarshal(data, &doc, f); err != nil {
		return nil, err
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	c := Default()
	if err := unmarshal(data, c, f); err != nil {
		return nil, err
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatPEM
	}
	return c, nil
}

// Load loads configuration from path, or from the file named by
// [EnvConfigFile] when path is empty. Without either, the defaults are
// returned.
//
// Configuration Priority:
//  1. Default values are set
//  2. NATIVE_CERTS_CONFIG_FILE is checked if path is empty
//  3. Config file values override defaults
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(path, data)
}
