package domain

import (
	"errors"
	"fmt"
)

// ErrDocumentNotFound means no filing could be located for a ticker.
var ErrDocumentNotFound = errors.New("no filing found")

// TransportError means the reasoning service was unreachable, timed out, or
// exited with a non-zero status. All transport-level failures collapse into
// this one kind.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("reasoner transport failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

const rawPrefixChars = 500

// MalformedResponseError means the reasoning service responded but the output
// was not structurally parseable. RawPrefix carries the head of the raw
// output for diagnostics.
type MalformedResponseError struct {
	Err       error
	RawPrefix string
}

func NewMalformedResponseError(err error, raw string) *MalformedResponseError {
	if len(raw) > rawPrefixChars {
		raw = raw[:rawPrefixChars]
	}
	return &MalformedResponseError{Err: err, RawPrefix: raw}
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("could not parse reasoner output: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
