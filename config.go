package goToken

import (
	"errors"
	"time"
)

// Config defines how an Issuer signs and observes token issuance.
//
// Config instances are intended to be configured during initialization and then treated as immutable.
type Config struct {
	// Secret is the HMAC-SHA256 key. Required.
	Secret string
	// DefaultTTL, when > 0, sets expires = now + DefaultTTL on tokens whose
	// caller did not supply an expires option.
	DefaultTTL time.Duration
	Audit      AuditConfig
	Metrics    MetricsConfig
}

/*
====================================
OBSERVABILITY CONFIG
====================================
*/

// AuditConfig controls the asynchronous audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig controls in-process issuance counters.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// DefaultConfig returns a config with observability off and no default expiry.
// Secret must still be set.
func DefaultConfig() Config {
	return Config{
		DefaultTTL: 0,
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

/*
====================================
VALIDATION
====================================
*/

// Validate rejects configurations an Issuer cannot run with.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("Secret must be set")
	}
	if c.DefaultTTL < 0 {
		return errors.New("DefaultTTL must be >= 0")
	}
	if c.Audit.BufferSize < 0 {
		return errors.New("Audit BufferSize must be >= 0")
	}
	if c.Metrics.EnableLatencyHistograms && !c.Metrics.Enabled {
		return errors.New("Metrics EnableLatencyHistograms requires Metrics Enabled")
	}
	return nil
}

/*
====================================
LINT
====================================
*/

const (
	minRecommendedSecretLength = 32
	maxRecommendedDefaultTTL   = 24 * time.Hour
)

// LintWarning is a non-fatal observation about a Config.
type LintWarning struct {
	Code    string
	Message string
}

// LintWarnings is the ordered result of Config.Lint.
type LintWarnings []LintWarning

// Codes returns the warning codes in order.
func (ws LintWarnings) Codes() []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Code)
	}
	return out
}

// Lint reports settings that are valid but risky. It never fails.
func (c *Config) Lint() LintWarnings {
	var ws LintWarnings
	if len(c.Secret) < minRecommendedSecretLength {
		ws = append(ws, LintWarning{
			Code:    "secret_short",
			Message: "Secret is shorter than 32 bytes; HMAC-SHA256 keys should carry at least 256 bits",
		})
	}
	if c.DefaultTTL == 0 {
		ws = append(ws, LintWarning{
			Code:    "no_default_expiry",
			Message: "DefaultTTL is 0; tokens without an expires option never expire",
		})
	}
	if c.DefaultTTL > maxRecommendedDefaultTTL {
		ws = append(ws, LintWarning{
			Code:    "default_ttl_long",
			Message: "DefaultTTL exceeds 24h",
		})
	}
	if c.Audit.Enabled && !c.Audit.DropIfFull {
		ws = append(ws, LintWarning{
			Code:    "audit_unbuffered",
			Message: "Audit DropIfFull is false; a slow sink blocks issuance",
		})
	}
	return ws
}
