package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proxin187/Server-For-School/internal/connector"
	"github.com/proxin187/Server-For-School/internal/connector/connectortest"
	"github.com/proxin187/Server-For-School/internal/shared/config"
)

func clientFor(t *testing.T, ep connector.Endpoint) *Client {
	t.Helper()
	cfg := config.Default()
	cfg.Host = ep.Host
	cfg.Port = int(ep.Port)
	cfg.ConnectTimeout = 5
	c, err := NewClient(cfg)
	require.NoError(t, err)
	return c
}

func TestRun_ListenerReceivesExactlyTheGreeting(t *testing.T) {
	recv := connectortest.NewReceiver(t)
	c := clientFor(t, recv.Endpoint())

	require.NoError(t, c.Run(context.Background()))

	got := recv.Next(t)
	assert.Equal(t, "Hello Server", string(got))
	assert.Len(t, got, 12)
}

func TestRun_NoListenerFailsWithConnectionError(t *testing.T) {
	c := clientFor(t, connectortest.ClosedEndpoint(t))

	err := c.Run(context.Background())
	var connErr *connector.ConnectionError
	require.ErrorAs(t, err, &connErr)

	var sendErr *connector.SendError
	assert.False(t, errors.As(err, &sendErr))
}

func TestRun_TwiceOpensTwoConnections(t *testing.T) {
	recv := connectortest.NewReceiver(t)
	c := clientFor(t, recv.Endpoint())

	require.NoError(t, c.Run(context.Background()))
	require.NoError(t, c.Run(context.Background()))

	assert.Equal(t, "Hello Server", string(recv.Next(t)))
	assert.Equal(t, "Hello Server", string(recv.Next(t)))
}

func TestRun_DefaultEndpoint(t *testing.T) {
	recv := connectortest.NewReceiverAt(t, connector.DefaultEndpoint().Address())

	c, err := NewClient(config.Default())
	require.NoError(t, err)
	assert.Equal(t, connector.DefaultEndpoint(), c.Endpoint())

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, []byte("Hello Server"), recv.Next(t))
}

func TestNewClient_RejectsBadPort(t *testing.T) {
	cfg := config.Default()
	cfg.Port = 70000
	_, err := NewClient(cfg)
	assert.Error(t, err)
}
