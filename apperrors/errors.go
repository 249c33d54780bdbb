package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrMissingParameter    = errors.New("missing required parameter")
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrUpstreamMalformed   = errors.New("malformed upstream response")
	ErrUpstreamUnreachable = errors.New("upstream unreachable")
	ErrMissingCredential   = errors.New("missing API key")
	ErrNotFound            = errors.New("not found")
)

// UpstreamUnavailableError reports a non-200 answer from an upstream API.
type UpstreamUnavailableError struct {
	StatusCode int
	Status     string
}

func (e *UpstreamUnavailableError) Error() string {
	if e.Status != "" {
		return "unexpected status code: " + e.Status
	}
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// ParameterError ties a request parameter to the reason it was rejected.
type ParameterError struct {
	Param string
	Err   error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Param)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

// UpstreamStatus returns the status code carried by err, if any.
func UpstreamStatus(err error) (int, bool) {
	var ue *UpstreamUnavailableError
	if errors.As(err, &ue) {
		return ue.StatusCode, true
	}
	return 0, false
}
