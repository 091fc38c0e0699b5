package prometheus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goToken "github.com/MrEthical07/goToken"
)

type fakeSource struct {
	snapshot goToken.MetricsSnapshot
	dropped  uint64
}

func (f fakeSource) MetricsSnapshot() goToken.MetricsSnapshot { return f.snapshot }
func (f fakeSource) AuditDropped() uint64                     { return f.dropped }

func TestRenderEmptyWhenMetricsDisabled(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goToken.MetricsSnapshot{
			Counters:   map[goToken.MetricID]uint64{},
			Histograms: map[goToken.MetricID][]uint64{},
		},
	})

	if got := exp.Render(); got != "" {
		t.Fatalf("expected empty output for disabled metrics, got:\n%s", got)
	}
}

func TestRenderDeterministicIncludesCounterAndHistogram(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goToken.MetricsSnapshot{
			Counters: map[goToken.MetricID]uint64{
				goToken.MetricTokenIssued: 7,
			},
			Histograms: map[goToken.MetricID][]uint64{
				goToken.MetricIssueLatency: {1, 2, 3, 4, 5, 6, 7, 8},
			},
		},
		dropped: 2,
	})

	out := exp.Render()
	if out != exp.Render() {
		t.Fatal("render output is not deterministic")
	}
	for _, want := range []string{
		"gotoken_token_issued_total 7",
		"gotoken_token_oversized_total 0",
		"gotoken_issue_latency_seconds_bucket{le=\"0.00001\"} 1",
		"gotoken_issue_latency_seconds_bucket{le=\"+Inf\"} 36",
		"gotoken_issue_latency_seconds_count 36",
		"gotoken_audit_dropped_total 2",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestRenderFromIssuer(t *testing.T) {
	issuer, err := goToken.New().WithSecret("barfoo").WithMetricsEnabled(true).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer issuer.Close()

	if _, err := issuer.Issue(context.Background(), nil, goToken.Options{goToken.OptionAdmin: true}); err != nil {
		t.Fatalf("issue: %v", err)
	}

	out := NewPrometheusExporter(issuer).Render()
	if !strings.Contains(out, "gotoken_admin_token_issued_total 1") {
		t.Fatalf("expected admin counter, got:\n%s", out)
	}
}

func TestHandlerWritesPrometheusContentType(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goToken.MetricsSnapshot{
			Counters:   map[goToken.MetricID]uint64{goToken.MetricTokenIssued: 1},
			Histograms: map[goToken.MetricID][]uint64{},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	exp.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "text/plain") {
		t.Fatalf("expected prometheus content type, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func BenchmarkRender(b *testing.B) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goToken.MetricsSnapshot{
			Counters: map[goToken.MetricID]uint64{
				goToken.MetricTokenIssued:          1000,
				goToken.MetricAdminTokenIssued:     12,
				goToken.MetricTokenInvalidArgument: 40,
				goToken.MetricTokenOversized:       3,
			},
			Histograms: map[goToken.MetricID][]uint64{
				goToken.MetricIssueLatency: {10, 20, 30, 40, 50, 60, 70, 80},
			},
		},
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = exp.Render()
	}
}
