// Package token parses compact-serialized JWTs for inspection.
//
// Parsing never verifies signatures. A Token is immutable once Parse returns
// and carries the issuing provider computed from its claims.
package token

import (
	"fmt"
	"strings"

	"github.com/jrschumacher/jwtinspect/internal/issuer"
)

// DefaultMaxLength bounds the accepted input size.
const DefaultMaxLength = 16384

// Token is a decoded, unverified JWT.
type Token struct {
	raw              string
	encodedHeader    string
	encodedClaims    string
	encodedSignature string
	hasSignature     bool
	header           *Object
	claims           *Object
	provider         issuer.Provider
}

type options struct {
	decoder   Decoder
	maxLength int
}

// Option configures Parse.
type Option func(*options)

// WithDecoder replaces the default segment decoder.
func WithDecoder(d Decoder) Option {
	return func(o *options) {
		if d != nil {
			o.decoder = d
		}
	}
}

// WithMaxLength limits the trimmed input length. Zero or less disables the check.
func WithMaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

var defaultDecoder = NewSegmentDecoder()

// Parse splits and decodes raw. It fails with a *MalformedTokenError when the
// trimmed input does not have two or three dot-separated segments. Decoder
// errors are returned unchanged.
func Parse(raw string, opts ...Option) (*Token, error) {
	o := options{decoder: defaultDecoder, maxLength: DefaultMaxLength}
	for _, opt := range opts {
		opt(&o)
	}

	raw = strings.TrimSpace(raw)
	if o.maxLength > 0 && len(raw) > o.maxLength {
		return nil, fmt.Errorf("%w: %d characters, maximum %d", ErrTokenTooLarge, len(raw), o.maxLength)
	}

	parts := strings.Split(raw, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, &MalformedTokenError{Segments: len(parts)}
	}

	header, err := o.decoder.Decode(raw, true)
	if err != nil {
		return nil, err
	}
	claims, err := o.decoder.Decode(raw, false)
	if err != nil {
		return nil, err
	}

	t := &Token{
		raw:           raw,
		encodedHeader: parts[0],
		encodedClaims: parts[1],
		header:        header,
		claims:        claims,
	}
	if len(parts) == 3 {
		t.encodedSignature = parts[2]
		t.hasSignature = parts[2] != ""
	}
	t.provider = issuer.Classify(claims)
	return t, nil
}

// Raw returns the trimmed input.
func (t *Token) Raw() string { return t.raw }

// EncodedHeader returns the first segment.
func (t *Token) EncodedHeader() string { return t.encodedHeader }

// EncodedClaims returns the second segment.
func (t *Token) EncodedClaims() string { return t.encodedClaims }

// EncodedSignature returns the third segment, possibly empty.
func (t *Token) EncodedSignature() string { return t.encodedSignature }

// HasSignature reports whether a non-empty third segment was present.
func (t *Token) HasSignature() bool { return t.hasSignature }

// Header returns the decoded header.
func (t *Token) Header() *Object { return t.header }

// Claims returns the decoded claims.
func (t *Token) Claims() *Object { return t.claims }

// Provider returns the issuing provider computed at parse time.
func (t *Token) Provider() issuer.Provider { return t.provider }

// Encoded reassembles the segments. For any token without an empty trailing
// signature segment this equals Raw.
func (t *Token) Encoded() string {
	s := t.encodedHeader + "." + t.encodedClaims
	if t.hasSignature {
		s += "." + t.encodedSignature
	}
	return s
}
