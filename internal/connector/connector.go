package connector

import (
	"context"
	"io"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/proxin187/Server-For-School/internal/shared"
	"github.com/proxin187/Server-For-School/internal/shared/logger"
)

// Options tunes the blocking calls. Zero values mean no deadline.
type Options struct {
	ConnectTimeout time.Duration
	WriteTimeout   time.Duration
}

// Connector opens outbound stream connections. It holds no per-connection
// state, so each Connect yields an independent Connection.
type Connector struct {
	opts Options
	log  zerolog.Logger
}

func New(opts Options) *Connector {
	return &Connector{
		opts: opts,
		log:  logger.WithComponent("connector"),
	}
}

// Connect dials endpoint over TCP and blocks until the connection is up,
// the dial fails, or ctx is done. Any failure is returned as a
// *ConnectionError and is not retried.
func (c *Connector) Connect(ctx context.Context, endpoint Endpoint) (*Connection, error) {
	dialer := &net.Dialer{Timeout: c.opts.ConnectTimeout}

	c.log.Debug().Str("endpoint", endpoint.Address()).Msg("dialing")
	conn, err := dialer.DialContext(ctx, "tcp", endpoint.Address())
	if err != nil {
		return nil, &ConnectionError{Endpoint: endpoint, Err: err}
	}

	connection := newConnection(conn, endpoint, c.opts.WriteTimeout, c.log)
	connection.log.Debug().
		Str("local_addr", conn.LocalAddr().String()).
		Msg("connected")
	return connection, nil
}

// Connection is one open stream to an Endpoint. It is owned by a single
// goroutine and is not safe for concurrent Send calls.
type Connection struct {
	id           string
	endpoint     Endpoint
	conn         *shared.CountedConn
	writeTimeout time.Duration
	log          zerolog.Logger
}

func newConnection(conn net.Conn, endpoint Endpoint, writeTimeout time.Duration, log zerolog.Logger) *Connection {
	id := uuid.NewString()
	return &Connection{
		id:           id,
		endpoint:     endpoint,
		conn:         shared.NewCountedConn(conn),
		writeTimeout: writeTimeout,
		log: log.With().
			Str("conn_id", id).
			Str("endpoint", endpoint.Address()).
			Logger(),
	}
}

// Send hands every byte of payload to the transport, looping over short
// writes. Failures come back as *SendError carrying the bytes already
// written; nothing is retried.
func (c *Connection) Send(payload []byte) error {
	if c.writeTimeout > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			return &SendError{Endpoint: c.endpoint, Err: err}
		}
	}

	written := 0
	for written < len(payload) {
		n, err := c.conn.Write(payload[written:])
		written += n
		if err != nil {
			return &SendError{Endpoint: c.endpoint, Written: written, Err: err}
		}
		if n == 0 {
			return &SendError{Endpoint: c.endpoint, Written: written, Err: io.ErrShortWrite}
		}
	}

	c.log.Debug().
		Int("bytes", written).
		Hex("payload", payload).
		Msg("payload sent")
	return nil
}

// Close releases the socket. The disconnect sentinel is not sent.
func (c *Connection) Close() error {
	return c.conn.Close()
}

func (c *Connection) ID() string { return c.id }

func (c *Connection) Endpoint() Endpoint { return c.endpoint }

// BytesSent is the number of bytes handed to the transport so far.
func (c *Connection) BytesSent() uint64 { return c.conn.BytesWritten() }

func (c *Connection) LocalAddr() net.Addr { return c.conn.LocalAddr() }

func (c *Connection) RemoteAddr() net.Addr { return c.conn.RemoteAddr() }
