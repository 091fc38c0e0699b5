package goToken

// validateRequest checks the payload against the admin flag. The presence
// and type checks for uid are evaluated together: a present uid must be text
// even on admin tokens, while an absent uid is only allowed for admins.
func validateRequest(data map[string]any, opts Options) error {
	if len(data) == 0 && len(opts) == 0 {
		return ErrEmptyToken
	}

	uid, hasUID := data["uid"]
	if !hasUID {
		if opts.IsAdmin() {
			return nil
		}
		return ErrMissingUID
	}

	s, ok := uid.(string)
	if !ok {
		return ErrUIDNotString
	}
	if len(s) > MaxUIDLength {
		return ErrUIDTooLong
	}
	return nil
}

// coerceRequest narrows dynamically typed input to the typed pipeline
// arguments. Only nil and map[string]any (the shape encoding/json decodes
// objects into) are accepted as data.
func coerceRequest(secret, data any, opts map[string]any) (string, map[string]any, Options, error) {
	s, ok := secret.(string)
	if !ok {
		return "", nil, nil, ErrSecretNotString
	}

	var payload map[string]any
	switch d := data.(type) {
	case nil:
	case map[string]any:
		payload = d
	default:
		return "", nil, nil, ErrDataNotMap
	}

	return s, payload, Options(opts), nil
}
