// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferInterface(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		want  string
	}{
		{
			name:  "Write byte slice",
			setup: func(buf Buffer) { buf.Write([]byte("hello")) },
			want:  "hello",
		},
		{
			name:  "WriteString",
			setup: func(buf Buffer) { buf.WriteString("-----BEGIN CERTIFICATE-----\n") },
			want:  "-----BEGIN CERTIFICATE-----\n",
		},
		{
			name:  "WriteByte",
			setup: func(buf Buffer) { buf.WriteByte('\n') },
			want:  "\n",
		},
		{
			name: "ReadFrom",
			setup: func(buf Buffer) {
				buf.ReadFrom(strings.NewReader("bundle bytes"))
			},
			want: "bundle bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			tt.setup(buf)
			assert.Equal(t, tt.want, string(buf.Bytes()))
			assert.Equal(t, len(tt.want), buf.Len())
		})
	}
}

func TestDetach(t *testing.T) {
	t.Run("Copy survives reset", func(t *testing.T) {
		buf := Default.Get()
		buf.WriteString("pem")

		out := Detach(buf)
		buf.Reset()
		buf.WriteString("xyz")
		Default.Put(buf)

		assert.Equal(t, []byte("pem"), out)
	})

	t.Run("Empty buffer", func(t *testing.T) {
		buf := Default.Get()
		defer Default.Put(buf)

		out := Detach(buf)
		require.NotNil(t, out)
		assert.Empty(t, out)
	})
}

// foreignBuffer is a Buffer that did not come from bytebufferpool.
type foreignBuffer struct{ bytes.Buffer }

func TestPool_PutForeignBuffer(t *testing.T) {
	assert.NotPanics(t, func() {
		Default.Put(&foreignBuffer{})
	}, "Put should ignore buffers it does not own")
}

func TestPool_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()
			buf.WriteString(strings.Repeat("a", id))
			assert.Equal(t, id, buf.Len())
		}(i)
	}
	wg.Wait()
}
