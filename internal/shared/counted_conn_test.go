package shared

import (
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountedConn_CountsWrittenBytes(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	cc := NewCountedConn(client)

	done := make(chan []byte, 1)
	go func() {
		data, _ := io.ReadAll(server)
		done <- data
	}()

	n, err := cc.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	_, err = cc.Write([]byte(" world"))
	require.NoError(t, err)
	require.NoError(t, cc.Close())

	assert.Equal(t, "hello world", string(<-done))
	assert.Equal(t, uint64(11), cc.BytesWritten())
}

func TestCountedConn_FailedWriteNotCounted(t *testing.T) {
	client, server := net.Pipe()
	server.Close()

	cc := NewCountedConn(client)
	defer cc.Close()

	_, err := cc.Write([]byte("hello"))
	assert.Error(t, err)
	assert.Equal(t, uint64(0), cc.BytesWritten())
}
