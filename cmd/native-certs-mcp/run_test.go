// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/native-certs/src/mcp-server"
)

func TestVersionInit(t *testing.T) {
	assert.NotEmpty(t, version)
	assert.Equal(t, version, mcpserver.GetVersion())
}
