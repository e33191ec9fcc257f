// Package apperrors defines the error taxonomy shared by the external
// service clients. Handlers use it to decide what a user sees versus what
// only operators see.
package apperrors

import "fmt"

// TransportError wraps a network-level failure talking to an external
// service (timeout, DNS, connection reset). Surfaced to users as a generic
// failure; never retried automatically.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError indicates a malformed or unexpected response shape from an
// external service. Logged with full detail for operators.
type ProtocolError struct {
	Op     string
	Detail string
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: protocol error: %s: %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: protocol error: %s", e.Op, e.Detail)
}

func (e *ProtocolError) Unwrap() error { return e.Err }
