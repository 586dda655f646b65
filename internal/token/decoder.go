package token

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
)

// Decoder turns an encoded token into a JSON object. When header is true the
// first segment is decoded, otherwise the payload.
type Decoder interface {
	Decode(token string, header bool) (*Object, error)
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc func(token string, header bool) (*Object, error)

// Decode implements Decoder.
func (f DecoderFunc) Decode(token string, header bool) (*Object, error) {
	return f(token, header)
}

// SegmentDecoder base64url-decodes a single segment and parses it as a JSON
// object. Padded segments are accepted.
type SegmentDecoder struct {
	parser *jwt.Parser
}

// NewSegmentDecoder returns the default decoder.
func NewSegmentDecoder() *SegmentDecoder {
	return &SegmentDecoder{parser: jwt.NewParser(jwt.WithPaddingAllowed())}
}

// Decode implements Decoder.
func (d *SegmentDecoder) Decode(token string, header bool) (*Object, error) {
	name, index := "claims", 1
	if header {
		name, index = "header", 0
	}

	parts := strings.Split(strings.TrimSpace(token), ".")
	if index >= len(parts) {
		return nil, &DecodeError{Segment: name, Err: errMissingSegment}
	}

	raw, err := d.parser.DecodeSegment(parts[index])
	if err != nil {
		return nil, &DecodeError{Segment: name, Err: err}
	}

	obj := &Object{}
	if err := json.Unmarshal(raw, obj); err != nil {
		return nil, &DecodeError{Segment: name, Err: err}
	}
	return obj, nil
}
