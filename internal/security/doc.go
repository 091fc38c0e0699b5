// Package security builds the issuer posture report exposed as
// goToken.SecurityReport.
//
// # What this package must NOT do
//
//   - Receive or retain secret material. Only its length is passed in.
package security
