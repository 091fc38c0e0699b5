package goToken

import "errors"

var (
	// ErrInvalidArgument is matched by every input-shape failure. It is always
	// returned before any encoding or signing work happens.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOversizedToken is returned when a fully built token exceeds MaxTokenLength.
	// It never matches ErrInvalidArgument.
	ErrOversizedToken = errors.New("generated token is too long")
)

var (
	// ErrSecretNotString reports a secret that is not text.
	ErrSecretNotString = argumentError("secret must be a string")
	// ErrEmptyToken reports a request with neither data nor options.
	ErrEmptyToken = argumentError("empty token has no effect")
	// ErrDataNotMap reports a payload that is neither null nor an object.
	ErrDataNotMap = argumentError("data must be a dictionary")
	// ErrMissingUID reports a non-admin payload without a uid key.
	ErrMissingUID = argumentError("data must contain a uid key")
	// ErrUIDNotString reports a uid key whose value is not text.
	ErrUIDNotString = argumentError("data uid must be a string")
	// ErrUIDTooLong reports a uid longer than MaxUIDLength bytes.
	ErrUIDTooLong = argumentError("uid too long")
	// ErrUnrecognizedOption reports an option key outside the claim table.
	ErrUnrecognizedOption = argumentError("unrecognized option")
	// ErrUnencodable reports a payload or option value that cannot be serialized to JSON.
	ErrUnencodable = argumentError("value is not json serializable")
)

type invalidArgument struct {
	msg string
}

func argumentError(msg string) error {
	return &invalidArgument{msg: msg}
}

func (e *invalidArgument) Error() string {
	return e.msg
}

func (e *invalidArgument) Unwrap() error {
	return ErrInvalidArgument
}
