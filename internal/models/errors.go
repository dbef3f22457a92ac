package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotArray     = errors.New("response body is not a JSON array")
	ErrTooManyPages = errors.New("page limit reached before the last page")
)

// UpstreamError reports a failed call to the upstream catalog.
// Status is zero when no HTTP response was received.
type UpstreamError struct {
	URL    string
	Status int
	Body   string
	Err    error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("API error %d: %v: %s", e.Status, e.Err, e.Body)
	case e.Status != 0:
		return fmt.Sprintf("API error %d: %s", e.Status, e.Body)
	default:
		return fmt.Sprintf("API request %s: %v", e.URL, e.Err)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// InternalError wraps any failure outside the upstream call.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
