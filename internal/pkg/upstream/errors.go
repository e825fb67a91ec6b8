package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the four failure kinds of an upstream call.
var (
	ErrUnavailable        = errors.New("upstream service unavailable")
	ErrBadStatus          = errors.New("upstream returned an error status")
	ErrMalformedResponse  = errors.New("upstream returned a malformed response")
	ErrRejected           = errors.New("upstream rejected the request")
	ErrEndpointUnresolved = errors.New("upstream endpoint could not be resolved")
)

// TransportError wraps network failures, including context cancellation.
type TransportError struct {
	Service string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Service, e.Err)
}

func (e *TransportError) Unwrap() []error { return []error{ErrUnavailable, e.Err} }

// StatusError is a non-2xx answer. Message is the backend's own message when
// it sent one.
type StatusError struct {
	Service string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Service, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Service, e.Code)
}

func (e *StatusError) Unwrap() error { return ErrBadStatus }

// DecodeError is a 2xx answer whose body is not JSON.
type DecodeError struct {
	Service string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: invalid JSON response: %v", e.Service, e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{ErrMalformedResponse, e.Err} }

// RejectedError is a 2xx answer carrying {"success": false, "message": ...}.
type RejectedError struct {
	Service string
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: rejected: %s", e.Service, e.Message)
}

func (e *RejectedError) Unwrap() error { return ErrRejected }

// IsNotFound reports whether err is a 404 from an upstream service.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// Message returns the message the upstream service attached to err, if any.
func Message(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	var re *RejectedError
	if errors.As(err, &re) {
		return re.Message
	}
	return ""
}
