package goToken

import (
	"errors"
	"time"
)

// Builder assembles an Issuer. A Builder can be built once.
type Builder struct {
	config    Config
	auditSink AuditSink
	clock     func() time.Time

	built bool
}

// New returns a Builder seeded with DefaultConfig.
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithSecret sets the signing secret.
func (b *Builder) WithSecret(secret string) *Builder {
	b.config.Secret = secret
	return b
}

// WithDefaultTTL sets the expiry applied when callers omit the expires option.
func (b *Builder) WithDefaultTTL(ttl time.Duration) *Builder {
	b.config.DefaultTTL = ttl
	return b
}

// WithAuditSink sets the audit destination and enables auditing.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	if sink != nil {
		b.config.Audit.Enabled = true
	}
	return b
}

// WithClock overrides time.Now, mainly for tests.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.clock = now
	return b
}

// WithMetricsEnabled toggles issuance counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles the issuance latency histogram.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration and starts the Issuer. Callers should
// Close the Issuer when auditing is enabled.
func (b *Builder) Build() (*Issuer, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := b.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clock := b.clock
	if clock == nil {
		clock = time.Now
	}

	b.built = true
	return newIssuer(cfg, b.auditSink, clock), nil
}
