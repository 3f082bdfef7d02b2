package connector

import "fmt"

// ConnectionError reports that the endpoint could not be reached: refused,
// unreachable, unresolved or timed out. Err is the system-level cause.
type ConnectionError struct {
	Endpoint Endpoint
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to %s failed: %v", e.Endpoint.Address(), e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// SendError reports a failed write on an established connection.
// Written is how many bytes reached the transport before the failure.
type SendError struct {
	Endpoint Endpoint
	Written  int
	Err      error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send to %s failed after %d bytes: %v", e.Endpoint.Address(), e.Written, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }
