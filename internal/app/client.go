package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/proxin187/Server-For-School/internal/connector"
	"github.com/proxin187/Server-For-School/internal/shared/logger"
	"github.com/proxin187/Server-For-School/internal/shared/types"
)

// Client performs one greeting run: connect, send the greeting once, done.
type Client struct {
	endpoint  connector.Endpoint
	connector *connector.Connector
	log       zerolog.Logger
}

// NewClient builds a Client from the loaded configuration.
func NewClient(cfg *types.Config) (*Client, error) {
	endpoint, err := connector.NewEndpoint(cfg.Host, cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("failed to build endpoint: %w", err)
	}
	return &Client{
		endpoint: endpoint,
		connector: connector.New(connector.Options{
			ConnectTimeout: time.Duration(cfg.ConnectTimeout) * time.Second,
			WriteTimeout:   time.Duration(cfg.WriteTimeout) * time.Second,
		}),
		log: logger.WithComponent("client"),
	}, nil
}

func (c *Client) Endpoint() connector.Endpoint {
	return c.endpoint
}

// Run opens a fresh connection and writes the greeting exactly once.
// A connect failure returns *connector.ConnectionError and nothing is
// written; a write failure returns *connector.SendError. Neither is retried.
// The connection is released before Run returns.
func (c *Client) Run(ctx context.Context) error {
	c.log.Info().Str("endpoint", c.endpoint.Address()).Msg("connecting")

	conn, err := c.connector.Connect(ctx, c.endpoint)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			c.log.Warn().Err(cerr).Str("conn_id", conn.ID()).Msg("close failed")
		}
	}()

	if err := conn.Send(connector.GreetingBytes()); err != nil {
		return err
	}

	c.log.Info().
		Str("conn_id", conn.ID()).
		Uint64("bytes", conn.BytesSent()).
		Msg("greeting sent")
	return nil
}
