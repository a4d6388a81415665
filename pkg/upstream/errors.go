package upstream

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingURL is returned when the caller did not supply the url query parameter.
	ErrMissingURL = errors.New("missing url parameter")
	// ErrSchemaMismatch marks an upstream payload that does not have the expected shape.
	ErrSchemaMismatch = errors.New("upstream schema mismatch")
	// ErrEmptyMedia marks a TikTok payload whose media list has no entries.
	ErrEmptyMedia = errors.New("upstream media list is empty")
)

// FailureError is returned when the upstream answered with status: false.
type FailureError struct {
	Platform string
	Message  string
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("%s: upstream reported failure", e.Platform)
}
