package domain

import (
	"errors"
	"strconv"
)

// Domain errors.
var (
	// ErrFetchInFlight is returned when a fetch is requested while another one is running.
	ErrFetchInFlight = errors.New("fetch already in progress")

	// ErrCardNotFound is returned when a card index has no matching feed item.
	ErrCardNotFound = errors.New("card not found")

	// ErrMissingHandle is returned when a required UI handle is not provided.
	ErrMissingHandle = errors.New("missing UI handle")
)

// NetworkError is returned when the feed responds with a non-success status.
type NetworkError struct {
	StatusCode int
}

func (e *NetworkError) Error() string {
	return "Network error: " + strconv.Itoa(e.StatusCode)
}

// ParseError wraps a failure to decode the feed body. Its message is the
// underlying error's text.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "parse error"
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(err error) *ParseError {
	return &ParseError{Err: err}
}
