// Package jwt serializes and signs compact HS256 tokens (header.claims.signature)
// with unpadded base64url segments.
//
// The package issues only; it never parses or verifies. Signing goes through
// golang-jwt's HS256 method so the digest matches what its parser verifies.
//
// # What this package must NOT do
//
//   - Decide which claims a token carries. Callers pass a fully assembled value.
//   - Enforce token size limits.
package jwt
