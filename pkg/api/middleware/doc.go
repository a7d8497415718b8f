// Package middleware provides HTTP middleware for the moderation API.
//
// The middleware chain, outermost first:
//   - RecoveryMiddleware: converts handler panics into a generic
//     INTERNAL_ERROR response and logs the stack trace.
//   - LoggingMiddleware: structured request/response logging with latency.
//   - RequestIDMiddleware: assigns or propagates X-Request-ID.
//
// All middleware follow the standard func(http.Handler) http.Handler shape
// and compose with plain nesting.
package middleware
