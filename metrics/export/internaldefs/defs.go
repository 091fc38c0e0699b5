package internaldefs

import (
	goToken "github.com/MrEthical07/goToken"
)

// CounterDef binds a counter MetricID to its exported name.
type CounterDef struct {
	ID   goToken.MetricID
	Name string
	Help string
}

// HistogramDef binds a histogram MetricID to its exported name.
type HistogramDef struct {
	ID   goToken.MetricID
	Name string
	Help string
}

// CounterDefs lists every issuance counter in export order.
var CounterDefs = []CounterDef{
	{ID: goToken.MetricTokenIssued, Name: "gotoken_token_issued_total", Help: "Tokens issued."},
	{ID: goToken.MetricAdminTokenIssued, Name: "gotoken_admin_token_issued_total", Help: "Issued tokens carrying the admin claim."},
	{ID: goToken.MetricTokenInvalidArgument, Name: "gotoken_token_invalid_argument_total", Help: "Issuance requests rejected as invalid arguments."},
	{ID: goToken.MetricTokenOversized, Name: "gotoken_token_oversized_total", Help: "Issuance requests rejected because the token exceeded the length limit."},
}

// HistogramDefs lists every histogram in export order.
var HistogramDefs = []HistogramDef{
	{ID: goToken.MetricIssueLatency, Name: "gotoken_issue_latency_seconds", Help: "Token issuance latency histogram."},
}

// HistogramBounds are the upper bounds, in seconds, of the eight latency
// buckets recorded by goToken.Metrics.
var HistogramBounds = []string{
	"0.00001",
	"0.000025",
	"0.00005",
	"0.0001",
	"0.00025",
	"0.0005",
	"0.001",
	"+Inf",
}

// HistogramBoundSuffix holds instrument-name-safe forms of HistogramBounds.
var HistogramBoundSuffix = []string{
	"0_00001",
	"0_000025",
	"0_00005",
	"0_0001",
	"0_00025",
	"0_0005",
	"0_001",
	"inf",
}

// NormalizeBuckets copies raw into a fixed eight-bucket array, zero filling
// missing buckets and ignoring extras.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into running totals.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
