// ABOUTME: Error kinds a tunes fetch can settle with
// ABOUTME: Each kind matches its sentinel via errors.Is and its type via errors.As
package tune

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork = errors.New("network error")
	ErrStatus  = errors.New("http status error")
	ErrDecode  = errors.New("decode error")
)

// NetworkError means the request never got a complete response.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// StatusError means the server answered with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status: %s", e.URL, e.Status)
}

func (e *StatusError) Is(target error) bool { return target == ErrStatus }

// DecodeError means the body was not a JSON array.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode tunes: %s: %v", e.Reason, e.Err)
	}
	return "decode tunes: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// Kind names the error kind of err, or "" if it is none of them.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrStatus):
		return "status"
	case errors.Is(err, ErrDecode):
		return "decode"
	default:
		return ""
	}
}
