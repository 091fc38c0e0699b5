package main

import (
	"fmt"
	"io"
	"time"

	goToken "github.com/MrEthical07/goToken"
	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// envConfig is the process environment understood by gotoken.
type envConfig struct {
	Secret     string        `env:"GOTOKEN_SECRET"`
	DefaultTTL time.Duration `env:"GOTOKEN_DEFAULT_TTL" envDefault:"0s"`
	AuditLog   bool          `env:"GOTOKEN_AUDIT_LOG" envDefault:"false"`
}

// loadEnv parses environ, or the process environment when environ is nil.
func loadEnv(environ map[string]string) (envConfig, error) {
	var cfg envConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return envConfig{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func (e envConfig) issuerConfig() goToken.Config {
	cfg := goToken.DefaultConfig()
	cfg.Secret = e.Secret
	cfg.DefaultTTL = e.DefaultTTL
	cfg.Audit.Enabled = e.AuditLog
	return cfg
}

func newAuditLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zap.InfoLevel,
	)
	return zap.New(core).Named("gotoken.audit")
}
