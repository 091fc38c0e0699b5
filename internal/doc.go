// Package internal holds helpers private to goToken.
//
// # Sub-packages
//
//   - audit: async event dispatch (Dispatcher and Sink implementations)
//   - security: issuer posture report
//
// # What this package must NOT do
//
//   - Export types that appear in the public goToken API except through aliases.
//   - Be imported by any package outside the goToken module.
package internal
