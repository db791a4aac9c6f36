// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers that behave the same on every
// operating system.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//
// # Usage Examples
//
//	rootCmd := &cobra.Command{
//	    Use:   posix.GetExecutableName("native-certs"),
//	    Short: "Export the operating system's trusted root certificates",
//	}
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
