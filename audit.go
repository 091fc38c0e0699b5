package goToken

import (
	"io"

	"github.com/MrEthical07/goToken/internal/audit"
	"go.uber.org/zap"
)

// AuditEvent is one issuance record delivered to an AuditSink.
type AuditEvent = audit.Event

// AuditSink receives audit events from an Issuer's dispatcher goroutine.
type AuditSink = audit.Sink

type (
	NoOpSink       = audit.NoOpSink
	ChannelSink    = audit.ChannelSink
	JSONWriterSink = audit.JSONWriterSink
	ZapSink        = audit.ZapSink
)

const (
	AuditEventTokenIssued   = audit.EventTokenIssued
	AuditEventTokenRejected = audit.EventTokenRejected
)

func NewChannelSink(buffer int) *ChannelSink {
	return audit.NewChannelSink(buffer)
}

func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return audit.NewJSONWriterSink(w)
}

// NewZapSink logs audit events through logger. A nil logger discards them.
func NewZapSink(logger *zap.Logger) *ZapSink {
	return audit.NewZapSink(logger)
}
