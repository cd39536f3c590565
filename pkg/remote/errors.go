package remote

import (
	"errors"

	"github.com/acamera-isp/ispreg-go/pkg/wire"
)

// Client errors.
var (
	ErrRequestTimeout = errors.New("request timed out")
	ErrClosed         = errors.New("remote space closed")
)

// StatusError represents an error response from the server.
type StatusError struct {
	Status  wire.Status
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Status.String() + ": " + e.Message
	}
	return e.Status.String()
}

// statusFor maps a request validation error to a status code.
func statusFor(err error) wire.Status {
	switch {
	case errors.Is(err, wire.ErrUnaligned):
		return wire.StatusUnaligned
	case errors.Is(err, wire.ErrOperation):
		return wire.StatusUnsupported
	default:
		return wire.StatusInvalidRequest
	}
}
