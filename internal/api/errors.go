package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes callers branch on.
var (
	// ErrInvalidCredentials is returned for 401-class authentication
	// failures.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccessDenied is returned when the service refuses the operation.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound is returned when the requested resource doesn't exist.
	ErrNotFound = errors.New("not found")
)

// APIError is the error half of the service's response envelope. A present
// error is a failure regardless of the transport status code.
type APIError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

func (e *APIError) Error() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Message != "":
		return e.Message
	default:
		return "request failed"
	}
}

// ConnectivityError wraps a transport-level failure so callers can
// distinguish "couldn't reach the service" from a service-reported error.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("could not reach the server: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
