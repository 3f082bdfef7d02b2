package connector

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestGreetingEncoding(t *testing.T) {
	b := GreetingBytes()
	assert.Len(t, b, 12)
	assert.Equal(t, 12, utf8.RuneCount(b))
	assert.True(t, utf8.Valid(b))
	assert.Equal(t, "Hello Server", string(b))
}

func TestGreetingBytesIsACopy(t *testing.T) {
	b := GreetingBytes()
	b[0] = 'J'
	assert.Equal(t, "Hello Server", string(GreetingBytes()))
}

func TestDisconnectSentinel(t *testing.T) {
	assert.Equal(t, "!DISCONNECT", DisconnectSentinel)
	assert.NotContains(t, Greeting, DisconnectSentinel)
}
