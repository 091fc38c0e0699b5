// Package goToken issues compact, HMAC-SHA256 signed authentication tokens that
// downstream services verify without a database lookup.
//
// A token is three unpadded base64url segments joined by ".":
//
//	{"typ":"JWT","alg":"HS256"} . {"v":0,"iat":...,"d":{...},...} . HMAC-SHA256
//
// The claims carry the caller's identity payload under "d" (which must hold a
// string "uid" of at most 256 bytes unless the token is an admin token) plus
// optional control claims mapped from [Options]: expires→exp,
// notBefore→nbf, admin, debug and simulate.
//
// # Entry points
//
//   - [CreateToken]: pure, typed issuance with no I/O or side effects.
//   - [CreateTokenFromValues]: the same pipeline for dynamically typed input.
//   - [Issuer] (via [New] / [Builder]): fixed secret, default expiry,
//     issuance metrics and asynchronous audit events.
//
// # Errors
//
// Input-shape failures match [ErrInvalidArgument] and are returned before any
// encoding work. Tokens longer than [MaxTokenLength] are rejected with
// [ErrOversizedToken], which callers fix by shrinking the payload rather than
// reshaping the request.
//
// # What this package must NOT do
//
//   - Verify, parse, store or revoke tokens.
//   - Manage or rotate secrets.
//   - Perform network I/O.
package goToken
