package goToken

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)

func buildTestIssuer(t *testing.T, b *Builder) *Issuer {
	t.Helper()
	issuer, err := b.Build()
	if err != nil {
		t.Fatalf("build issuer: %v", err)
	}
	t.Cleanup(issuer.Close)
	return issuer
}

func TestBuilderRequiresSecret(t *testing.T) {
	if _, err := New().Build(); err == nil {
		t.Fatal("expected missing secret to fail")
	}
}

func TestBuilderSingleUse(t *testing.T) {
	b := New().WithSecret("barfoo")
	if _, err := b.Build(); err != nil {
		t.Fatalf("first build: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("expected second build to fail")
	}
}

func TestBuilderRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Secret = "barfoo"
	cfg.DefaultTTL = -time.Second
	if _, err := New().WithConfig(cfg).Build(); err == nil {
		t.Fatal("expected negative DefaultTTL to fail")
	}
}

func TestIssuerUsesClockAndSecret(t *testing.T) {
	issuer := buildTestIssuer(t, New().WithSecret("barfoo").WithClock(func() time.Time { return fixedNow }))

	got, err := issuer.Issue(context.Background(), map[string]any{"uid": "u1"}, nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	want, err := createToken("barfoo", map[string]any{"uid": "u1"}, nil, fixedNow)
	if err != nil {
		t.Fatalf("createToken: %v", err)
	}
	if got != want {
		t.Fatalf("issuer token differs from pipeline token:\n%s\n%s", got, want)
	}
}

func TestIssuerDefaultTTL(t *testing.T) {
	issuer := buildTestIssuer(t, New().
		WithSecret("barfoo").
		WithDefaultTTL(15*time.Minute).
		WithClock(func() time.Time { return fixedNow }))

	token, err := issuer.Issue(context.Background(), map[string]any{"uid": "u1"}, nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims := decodeSegment(t, splitToken(t, token)[1])
	if claims["exp"] != float64(fixedNow.Add(15*time.Minute).Unix()) {
		t.Fatalf("expected default exp, got %#v", claims["exp"])
	}

	explicit := fixedNow.Add(time.Hour)
	opts := Options{OptionExpires: explicit}
	token, err = issuer.Issue(context.Background(), map[string]any{"uid": "u1"}, opts)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims = decodeSegment(t, splitToken(t, token)[1])
	if claims["exp"] != float64(explicit.Unix()) {
		t.Fatalf("caller expires must win, got %#v", claims["exp"])
	}
	if len(opts) != 1 {
		t.Fatalf("caller options mutated: %#v", opts)
	}
}

func TestIssuerDefaultTTLKeepsEmptyRequestError(t *testing.T) {
	issuer := buildTestIssuer(t, New().WithSecret("barfoo").WithDefaultTTL(time.Minute))

	if _, err := issuer.Issue(context.Background(), nil, nil); !errors.Is(err, ErrEmptyToken) {
		t.Fatalf("expected ErrEmptyToken, got %v", err)
	}
}

func TestIssuerMetrics(t *testing.T) {
	issuer := buildTestIssuer(t, New().
		WithSecret("barfoo").
		WithMetricsEnabled(true).
		WithLatencyHistograms(true))
	ctx := context.Background()

	if _, err := issuer.Issue(ctx, map[string]any{"uid": "u1"}, nil); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.Issue(ctx, nil, Options{OptionAdmin: true}); err != nil {
		t.Fatalf("issue admin: %v", err)
	}
	if _, err := issuer.Issue(ctx, map[string]any{"blah": 5}, nil); err == nil {
		t.Fatal("expected missing uid to fail")
	}
	if _, err := issuer.Issue(ctx, map[string]any{"uid": "u", "big": strings.Repeat("x", 1000)}, nil); !errors.Is(err, ErrOversizedToken) {
		t.Fatalf("expected oversized, got %v", err)
	}
	if _, err := issuer.IssueFromValues(ctx, "not-a-map", nil); !errors.Is(err, ErrDataNotMap) {
		t.Fatalf("expected ErrDataNotMap, got %v", err)
	}

	snap := issuer.MetricsSnapshot()
	checks := map[MetricID]uint64{
		MetricTokenIssued:          2,
		MetricAdminTokenIssued:     1,
		MetricTokenInvalidArgument: 2,
		MetricTokenOversized:       1,
	}
	for id, want := range checks {
		if got := snap.Counters[id]; got != want {
			t.Fatalf("metric %d = %d, want %d", id, got, want)
		}
	}

	var observed uint64
	for _, c := range snap.Histograms[MetricIssueLatency] {
		observed += c
	}
	if observed != 4 {
		t.Fatalf("expected 4 latency observations, got %d", observed)
	}
}

func TestIssuerAuditEvents(t *testing.T) {
	sink := NewChannelSink(8)
	issuer := buildTestIssuer(t, New().
		WithSecret("barfoo").
		WithAuditSink(sink).
		WithClock(func() time.Time { return fixedNow }))
	ctx := context.Background()

	token, err := issuer.Issue(ctx, map[string]any{"uid": "u1"}, Options{OptionAdmin: true})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.Issue(ctx, map[string]any{"uid": 7}, nil); err == nil {
		t.Fatal("expected invalid uid to fail")
	}

	issued := waitEvent(t, sink)
	if issued.EventType != AuditEventTokenIssued || !issued.Success {
		t.Fatalf("unexpected issued event %+v", issued)
	}
	if issued.UserID != "u1" || !issued.Admin || issued.TokenLength != len(token) {
		t.Fatalf("unexpected issued event fields %+v", issued)
	}
	if !issued.Timestamp.Equal(fixedNow) {
		t.Fatalf("timestamp = %v, want %v", issued.Timestamp, fixedNow)
	}

	rejected := waitEvent(t, sink)
	if rejected.EventType != AuditEventTokenRejected || rejected.Success {
		t.Fatalf("unexpected rejected event %+v", rejected)
	}
	if rejected.Error != ErrUIDNotString.Error() {
		t.Fatalf("rejected error = %q", rejected.Error)
	}
}

func TestIssuerAuditNeverRecordsSecretOrToken(t *testing.T) {
	var buf bytes.Buffer
	issuer, err := New().
		WithSecret("super-secret-value").
		WithAuditSink(NewJSONWriterSink(&buf)).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	token, err := issuer.Issue(context.Background(), map[string]any{"uid": "u1"}, nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	issuer.Close()

	out := buf.String()
	if strings.Contains(out, "super-secret-value") || strings.Contains(out, token) {
		t.Fatalf("audit output leaked secret or token: %s", out)
	}
	var event AuditEvent
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &event); err != nil {
		t.Fatalf("unmarshal audit line: %v", err)
	}
	if event.UserID != "u1" {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestIssuerWithoutAuditReportsNoDrops(t *testing.T) {
	issuer := buildTestIssuer(t, New().WithSecret("barfoo"))
	if issuer.AuditDropped() != 0 {
		t.Fatal("expected no drops without audit")
	}
	if issuer.Metrics().Enabled() {
		t.Fatal("metrics must be disabled by default")
	}
}

func TestIssuerSecurityReport(t *testing.T) {
	issuer := buildTestIssuer(t, New().
		WithSecret("barfoo").
		WithDefaultTTL(time.Hour).
		WithMetricsEnabled(true).
		WithAuditSink(NoOpSink{}))

	r := issuer.SecurityReport()
	if r.SigningAlgorithm != "HS256" || r.SecretBits != 48 || !r.WeakSecret {
		t.Fatalf("unexpected signing posture %+v", r)
	}
	if !r.ExpiryEnforced || r.DefaultTTL != time.Hour {
		t.Fatalf("unexpected expiry posture %+v", r)
	}
	if r.MaxTokenLength != MaxTokenLength || r.MaxUIDLength != MaxUIDLength {
		t.Fatalf("unexpected limits %+v", r)
	}
	if !r.MetricsEnabled || !r.AuditEnabled || !r.AuditLossy {
		t.Fatalf("unexpected observability posture %+v", r)
	}

	var nilIssuer *Issuer
	if nilIssuer.SecurityReport() != (SecurityReport{}) {
		t.Fatal("nil issuer must report zero value")
	}
}

func waitEvent(t *testing.T, sink *ChannelSink) AuditEvent {
	t.Helper()
	select {
	case e := <-sink.Events():
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for audit event")
	}
	return AuditEvent{}
}
