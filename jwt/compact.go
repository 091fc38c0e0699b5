package jwt

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	gjwt "github.com/golang-jwt/jwt/v5"
)

const (
	// HeaderType is the fixed "typ" header value.
	HeaderType = "JWT"
	// Algorithm is the only signing algorithm emitted by this package.
	Algorithm = "HS256"
	// Separator joins the three compact segments.
	Separator = "."
)

// Header is the protected header of an issued token.
//
// Field order is significant: it fixes the serialized bytes to
// {"typ":"JWT","alg":"HS256"}, which existing consumers compare verbatim.
type Header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// DefaultHeader is the header attached to every token.
var DefaultHeader = Header{Type: HeaderType, Algorithm: Algorithm}

// ErrEncode wraps any failure to serialize a header or claims value.
var ErrEncode = errors.New("segment encoding failed")

// EncodeSegment serializes v to compact JSON and returns it as unpadded
// base64url text.
func EncodeSegment(v any) (string, error) {
	raw, err := marshalCompact(v)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Sign computes HMAC-SHA256 over signingInput keyed by secret and returns the
// digest as unpadded base64url text.
func Sign(secret []byte, signingInput string) (string, error) {
	if secret == nil {
		secret = []byte{}
	}
	sig, err := gjwt.SigningMethodHS256.Sign(signingInput, secret)
	if err != nil {
		return "", fmt.Errorf("hs256 sign: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(sig), nil
}

// Compact produces header.claims.signature for claims using DefaultHeader.
func Compact(secret []byte, claims any) (string, error) {
	header, err := EncodeSegment(DefaultHeader)
	if err != nil {
		return "", err
	}
	body, err := EncodeSegment(claims)
	if err != nil {
		return "", err
	}

	signingInput := header + Separator + body
	sig, err := Sign(secret, signingInput)
	if err != nil {
		return "", err
	}
	return signingInput + Separator + sig, nil
}

// marshalCompact is json.Marshal without HTML escaping, so '<', '>' and '&'
// stay one byte each and count once against token size limits.
func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
