package client

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed remote call.
type ErrorKind string

const (
	// KindNetwork means the transport failed and no response was received.
	KindNetwork ErrorKind = "network"
	// KindDomain means the service rejected the operation.
	KindDomain ErrorKind = "domain"
	// KindUnauthorized means the credential was missing, expired or invalid.
	// The session is torn down before the error is surfaced.
	KindUnauthorized ErrorKind = "unauthorized"
)

// GatewayError is the single failure type produced by the gateway. Message
// is always suitable for display: the server-provided message for domain
// rejections, a per-operation fallback otherwise.
type GatewayError struct {
	Kind    ErrorKind
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s error", e.Op, e.Kind)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// AuthError reports a rejected login or register attempt. It is distinct
// from KindUnauthorized: a failed login never tears down an existing
// session.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ErrNotAuthenticated is returned by operations that need an active
// session before any network call can be attempted.
var ErrNotAuthenticated = errors.New("not logged in")

// IsUnauthorized reports whether err is a gateway rejection that forced a
// session teardown.
func IsUnauthorized(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge) && ge.Kind == KindUnauthorized
}

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge) && ge.Kind == KindNetwork
}
