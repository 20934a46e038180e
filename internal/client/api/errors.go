package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated is returned by operations that require a credential
	// when the token store holds none. No network call is made.
	ErrUnauthenticated = errors.New("no authentication token found, please log in")

	// ErrTransport marks network-level failures (DNS, connection refused,
	// timeout). Match with errors.Is.
	ErrTransport = errors.New("backend unreachable")
)

// RequestError is a non-2xx backend response. Message carries the
// backend-supplied message verbatim, or the operation's generic fallback when
// the body has none.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func transportError(err error) error {
	return fmt.Errorf("%w: %v", ErrTransport, err)
}
