// Package prometheus renders goToken issuance metrics in Prometheus text
// exposition format.
//
// [NewPrometheusExporter] reads from a [goToken.Issuer] and exposes an
// [http.Handler]. Counters are named gotoken_*_total and the latency
// histogram is gotoken_issue_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry. Callers mount the Handler.
//   - Mutate issuer state.
package prometheus
