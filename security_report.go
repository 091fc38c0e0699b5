package goToken

import (
	"github.com/MrEthical07/goToken/internal/security"
	"github.com/MrEthical07/goToken/jwt"
)

// SecurityReport describes the issuance posture of an Issuer. It never
// contains the secret itself.
type SecurityReport = security.Report

func buildSecurityReport(cfg Config) SecurityReport {
	return security.BuildReport(security.ReportInput{
		SigningAlgorithm:  jwt.Algorithm,
		SecretLength:      len(cfg.Secret),
		DefaultTTL:        cfg.DefaultTTL,
		MaxTokenLength:    MaxTokenLength,
		MaxUIDLength:      MaxUIDLength,
		MetricsEnabled:    cfg.Metrics.Enabled,
		LatencyHistograms: cfg.Metrics.EnableLatencyHistograms,
		AuditEnabled:      cfg.Audit.Enabled,
		AuditDropIfFull:   cfg.Audit.DropIfFull,
	})
}

// SecurityReport returns the posture computed when the Issuer was built.
func (i *Issuer) SecurityReport() SecurityReport {
	if i == nil {
		return SecurityReport{}
	}
	return i.report
}
