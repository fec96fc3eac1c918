package client

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Sentinel errors for PokeAPI calls.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrNotFound indicates the requested id or name does not exist upstream.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidArgument is returned before any I/O for ids, names or page
	// bounds that cannot address a resource.
	ErrInvalidArgument = errors.New("invalid argument")
)

// RemoteError is a non-2xx response (other than 404) or a body that is not
// valid JSON for the requested record.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote error: status %d", e.Status)
	}
	return fmt.Sprintf("remote error: status %d: %s", e.Status, e.Message)
}

// TransportError means the request never produced a response: the host was
// unreachable, the connection broke, or the per-call timeout expired.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a deadline expiry.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}
