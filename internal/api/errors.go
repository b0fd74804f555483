package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAction indicates a menu index outside the four fixed actions
	ErrUnknownAction = errors.New("unknown action")
	// ErrUnknownKind indicates a decode target that is not characters, episodes or locations
	ErrUnknownKind = errors.New("unknown response kind")
)

// TransportError wraps a failure to obtain a response at all (DNS, refused, reset, cancelled)
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError represents a non-success HTTP response
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status error: GET %s returned %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("status error: GET %s returned %d: %s", e.URL, e.StatusCode, e.Body)
}

// IsNotFound checks if the response was a 404, which the API also uses for empty searches
func (e *StatusError) IsNotFound() bool {
	return e.StatusCode == 404
}

// DecodeError wraps malformed JSON, missing fields and out-of-set enum values
type DecodeError struct {
	Kind Kind
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %s: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
