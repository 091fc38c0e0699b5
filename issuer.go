package goToken

import (
	"context"
	"errors"
	"time"

	"github.com/MrEthical07/goToken/internal/audit"
)

// Issuer issues tokens with a fixed secret, recording metrics and audit
// events for every request. It is safe for concurrent use after Build.
//
// Unlike CreateToken, an Issuer has side effects: counters and, when
// enabled, asynchronous audit delivery. It never logs the secret or tokens.
type Issuer struct {
	secret     string
	defaultTTL time.Duration
	now        func() time.Time

	metrics *Metrics
	audit   *audit.Dispatcher
	report  SecurityReport
}

func newIssuer(cfg Config, sink AuditSink, clock func() time.Time) *Issuer {
	return &Issuer{
		secret:     cfg.Secret,
		defaultTTL: cfg.DefaultTTL,
		now:        clock,
		metrics:    NewMetrics(cfg.Metrics),
		audit: audit.NewDispatcher(audit.Config{
			Enabled:    cfg.Audit.Enabled,
			BufferSize: cfg.Audit.BufferSize,
			DropIfFull: cfg.Audit.DropIfFull,
		}, sink),
		report: buildSecurityReport(cfg),
	}
}

// Issue creates a token for data and opts, applying the configured default
// expiry when opts has no expires entry. opts is never modified.
//
// Errors match ErrInvalidArgument or ErrOversizedToken exactly as for CreateToken.
func (i *Issuer) Issue(ctx context.Context, data map[string]any, opts Options) (string, error) {
	start := time.Now()
	now := i.now()

	token, err := i.issue(data, opts, now)
	i.record(ctx, data, opts, token, err, now)
	i.metrics.Observe(MetricIssueLatency, time.Since(start))
	return token, err
}

// IssueFromValues is Issue for dynamically typed input; see CreateTokenFromValues.
func (i *Issuer) IssueFromValues(ctx context.Context, data any, opts map[string]any) (string, error) {
	_, payload, o, err := coerceRequest(i.secret, data, opts)
	if err != nil {
		i.record(ctx, nil, Options(opts), "", err, i.now())
		return "", err
	}
	return i.Issue(ctx, payload, o)
}

func (i *Issuer) issue(data map[string]any, opts Options, now time.Time) (string, error) {
	// Validate the caller's request before defaults are merged so an empty
	// request is still reported as empty.
	if err := validateRequest(data, opts); err != nil {
		return "", err
	}
	return createToken(i.secret, data, i.withDefaults(opts, now), now)
}

func (i *Issuer) withDefaults(opts Options, now time.Time) Options {
	if i.defaultTTL <= 0 {
		return opts
	}
	if _, ok := opts[OptionExpires]; ok {
		return opts
	}
	out := opts.Clone()
	if out == nil {
		out = make(Options, 1)
	}
	out[OptionExpires] = now.Add(i.defaultTTL)
	return out
}

func (i *Issuer) record(ctx context.Context, data map[string]any, opts Options, token string, err error, now time.Time) {
	admin := opts.IsAdmin()
	switch {
	case err == nil:
		i.metrics.Inc(MetricTokenIssued)
		if admin {
			i.metrics.Inc(MetricAdminTokenIssued)
		}
	case errors.Is(err, ErrOversizedToken):
		i.metrics.Inc(MetricTokenOversized)
	case errors.Is(err, ErrInvalidArgument):
		i.metrics.Inc(MetricTokenInvalidArgument)
	}

	if i.audit == nil {
		return
	}
	uid, _ := data["uid"].(string)
	event := AuditEvent{
		Timestamp:   now.UTC(),
		EventType:   AuditEventTokenIssued,
		UserID:      uid,
		Admin:       admin,
		TokenLength: len(token),
		Success:     err == nil,
	}
	if err != nil {
		event.EventType = AuditEventTokenRejected
		event.Error = err.Error()
	}
	i.audit.Emit(ctx, event)
}

// Metrics returns the live metrics set.
func (i *Issuer) Metrics() *Metrics {
	return i.metrics
}

// MetricsSnapshot copies the current issuance counters.
func (i *Issuer) MetricsSnapshot() MetricsSnapshot {
	return i.metrics.Snapshot()
}

// AuditDropped returns how many audit events were discarded under backpressure.
func (i *Issuer) AuditDropped() uint64 {
	return i.audit.Dropped()
}

// Close flushes pending audit events and stops the dispatcher. Issue keeps
// working after Close but no longer emits audit events.
func (i *Issuer) Close() {
	i.audit.Close()
}
