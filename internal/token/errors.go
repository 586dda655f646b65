package token

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedToken is matched by every MalformedTokenError.
	ErrMalformedToken = errors.New("invalid token, there must be two or three parts")
	// ErrTokenTooLarge is returned when the input exceeds the configured maximum length.
	ErrTokenTooLarge = errors.New("token too large")

	errMissingSegment = errors.New("segment missing")
)

// MalformedTokenError reports a token whose segment count is not 2 or 3.
type MalformedTokenError struct {
	Segments int
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("%s: got %d", ErrMalformedToken.Error(), e.Segments)
}

// Is makes errors.Is(err, ErrMalformedToken) succeed.
func (e *MalformedTokenError) Is(target error) bool {
	return target == ErrMalformedToken
}

// DecodeError reports a segment that is not base64url encoded JSON.
type DecodeError struct {
	Segment string // "header" or "claims"
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Segment, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
