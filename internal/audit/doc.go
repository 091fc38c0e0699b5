// Package audit implements async delivery of token issuance events.
//
// # Components
//
//   - [Sink]: interface for event consumers (channel, JSON writer, zap logger, no-op).
//   - [Dispatcher]: buffered async relay with drop-if-full / block-if-full semantics.
//   - [Event]: issuance record with timestamp, type, user, admin flag and token length.
//
// # Architecture boundaries
//
// This package owns event buffering and sink delivery. It does NOT decide which events
// to emit. The Issuer decides that.
//
// # What this package must NOT do
//
//   - Record secrets or token strings.
//   - Import goToken or any sibling package.
package audit
