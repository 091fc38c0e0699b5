package goToken

import (
	"errors"
	"fmt"
	"time"

	"github.com/MrEthical07/goToken/jwt"
)

const (
	// TokenVersion is the "v" claim carried by every token.
	TokenVersion = 0
	// MaxTokenLength bounds the encoded token so it stays usable as a URL query parameter.
	MaxTokenLength = 1024
	// MaxUIDLength bounds the UTF-8 byte length of the uid payload key.
	MaxUIDLength = 256
)

// CreateToken issues a signed token for data and opts.
//
// data is the identity payload; nil is the null payload and is only valid
// together with an admin option. Input-shape failures match
// ErrInvalidArgument and are returned before any encoding happens. A token
// longer than MaxTokenLength is never returned; ErrOversizedToken is returned
// instead.
//
// CreateToken reads the clock once and has no other side effects. It is safe
// for concurrent use.
func CreateToken(secret string, data map[string]any, opts Options) (string, error) {
	return createToken(secret, data, opts, time.Now())
}

// CreateTokenFromValues is CreateToken for dynamically typed input, such as
// values decoded from JSON. secret must be a string and data must be nil or
// a map[string]any.
func CreateTokenFromValues(secret any, data any, opts map[string]any) (string, error) {
	s, payload, o, err := coerceRequest(secret, data, opts)
	if err != nil {
		return "", err
	}
	return createToken(s, payload, o, time.Now())
}

func createToken(secret string, data map[string]any, opts Options, now time.Time) (string, error) {
	if err := validateRequest(data, opts); err != nil {
		return "", err
	}

	claims, err := buildClaims(data, opts, now)
	if err != nil {
		return "", err
	}

	token, err := jwt.Compact([]byte(secret), claims)
	if err != nil {
		if errors.Is(err, jwt.ErrEncode) {
			return "", fmt.Errorf("%w: %w", ErrUnencodable, err)
		}
		return "", err
	}

	if len(token) > MaxTokenLength {
		return "", fmt.Errorf("%w: %d bytes exceeds %d", ErrOversizedToken, len(token), MaxTokenLength)
	}
	return token, nil
}
