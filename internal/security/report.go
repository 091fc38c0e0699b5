package security

import "time"

// MinSecretBits is the HMAC-SHA256 key size below which a secret is reported
// as weak.
const MinSecretBits = 256

type Report struct {
	SigningAlgorithm  string
	SecretBits        int
	WeakSecret        bool
	DefaultTTL        time.Duration
	ExpiryEnforced    bool
	MaxTokenLength    int
	MaxUIDLength      int
	MetricsEnabled    bool
	LatencyHistograms bool
	AuditEnabled      bool
	AuditLossy        bool
}

type ReportInput struct {
	SigningAlgorithm  string
	SecretLength      int
	DefaultTTL        time.Duration
	MaxTokenLength    int
	MaxUIDLength      int
	MetricsEnabled    bool
	LatencyHistograms bool
	AuditEnabled      bool
	AuditDropIfFull   bool
}

// BuildReport summarizes input. It only sees the secret's length.
func BuildReport(input ReportInput) Report {
	bits := input.SecretLength * 8
	return Report{
		SigningAlgorithm:  input.SigningAlgorithm,
		SecretBits:        bits,
		WeakSecret:        bits < MinSecretBits,
		DefaultTTL:        input.DefaultTTL,
		ExpiryEnforced:    input.DefaultTTL > 0,
		MaxTokenLength:    input.MaxTokenLength,
		MaxUIDLength:      input.MaxUIDLength,
		MetricsEnabled:    input.MetricsEnabled,
		LatencyHistograms: input.MetricsEnabled && input.LatencyHistograms,
		AuditEnabled:      input.AuditEnabled,
		AuditLossy:        input.AuditEnabled && input.AuditDropIfFull,
	}
}
