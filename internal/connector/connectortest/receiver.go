// Package connectortest provides a loopback peer for exercising the
// connector against a real socket.
package connectortest

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/proxin187/Server-For-School/internal/connector"
)

// Receiver accepts connections on 127.0.0.1 and reads each one to EOF.
type Receiver struct {
	ln       net.Listener
	received chan []byte
}

// NewReceiver listens on an ephemeral loopback port. It is closed on
// test cleanup.
func NewReceiver(t testing.TB) *Receiver {
	t.Helper()
	return NewReceiverAt(t, "127.0.0.1:0")
}

// NewReceiverAt listens on addr, skipping the test if it is taken.
func NewReceiverAt(t testing.TB, addr string) *Receiver {
	t.Helper()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		t.Skipf("cannot listen on %s: %v", addr, err)
	}
	r := &Receiver{
		ln:       ln,
		received: make(chan []byte, 16),
	}
	go r.acceptLoop()
	t.Cleanup(r.Close)
	return r
}

func (r *Receiver) acceptLoop() {
	for {
		conn, err := r.ln.Accept()
		if err != nil {
			return
		}
		go func() {
			defer conn.Close()
			_ = conn.SetReadDeadline(time.Now().Add(10 * time.Second))
			data, _ := io.ReadAll(conn)
			r.received <- data
		}()
	}
}

// Endpoint is where the receiver is listening.
func (r *Receiver) Endpoint() connector.Endpoint {
	addr := r.ln.Addr().(*net.TCPAddr)
	return connector.Endpoint{Host: addr.IP.String(), Port: connector.Port(addr.Port)}
}

// Next waits for the next connection to reach EOF and returns everything
// it carried.
func (r *Receiver) Next(t testing.TB) []byte {
	t.Helper()
	select {
	case data := <-r.received:
		return data
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for a connection to finish")
		return nil
	}
}

// Pending reports how many finished connections have not been collected.
func (r *Receiver) Pending() int {
	return len(r.received)
}

func (r *Receiver) Close() {
	_ = r.ln.Close()
}

// ClosedEndpoint returns a loopback endpoint with nothing listening on it.
func ClosedEndpoint(t testing.TB) connector.Endpoint {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().(*net.TCPAddr)
	if err := ln.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return connector.Endpoint{Host: "127.0.0.1", Port: connector.Port(addr.Port)}
}
