package goToken

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// Options carries optional control claims keyed by option name.
//
// Recognized keys are OptionExpires, OptionNotBefore, OptionAdmin, OptionDebug
// and OptionSimulate. Any other key is rejected with ErrUnrecognizedOption.
type Options map[string]any

const (
	// OptionExpires sets the "exp" claim. time.Time values become epoch seconds.
	OptionExpires = "expires"
	// OptionNotBefore sets the "nbf" claim. time.Time values become epoch seconds.
	OptionNotBefore = "notBefore"
	// OptionAdmin sets the "admin" claim; true marks a trusted-server token.
	OptionAdmin = "admin"
	// OptionDebug sets the "debug" claim.
	OptionDebug = "debug"
	// OptionSimulate sets the "simulate" claim.
	OptionSimulate = "simulate"
)

const (
	claimVersion  = "v"
	claimIssuedAt = "iat"
	claimData     = "d"
)

var optionClaims = map[string]string{
	OptionExpires:   "exp",
	OptionNotBefore: "nbf",
	OptionAdmin:     "admin",
	OptionDebug:     "debug",
	OptionSimulate:  "simulate",
}

// IsAdmin reports whether the options request an admin token. Only the
// boolean true counts.
func (o Options) IsAdmin() bool {
	v, ok := o[OptionAdmin].(bool)
	return ok && v
}

// Clone returns a shallow copy, or nil for nil options.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	return maps.Clone(o)
}

// buildClaims maps options through the claim table and adds the fixed
// claims. Options are visited in sorted order so the first unrecognized
// name reported is stable.
func buildClaims(data map[string]any, opts Options, now time.Time) (map[string]any, error) {
	claims := make(map[string]any, len(opts)+3)
	for _, name := range slices.Sorted(maps.Keys(opts)) {
		claim, ok := optionClaims[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnrecognizedOption, name)
		}
		claims[claim] = epochValue(opts[name])
	}

	claims[claimVersion] = TokenVersion
	claims[claimIssuedAt] = now.UTC().Unix()
	claims[claimData] = data
	return claims, nil
}

func epochValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Unix()
	case *time.Time:
		if t != nil {
			return t.UTC().Unix()
		}
	}
	return v
}
