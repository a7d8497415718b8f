// Package server provides the HTTP server for the moderation service.
//
// The server assembles the moderation handlers, health probes, version
// endpoint, and the Prometheus scrape endpoint behind a middleware chain
// (request ID, logging, recovery), and owns the graceful lifecycle: Start
// blocks until the context is cancelled, a shutdown signal arrives, or the
// listener fails, then drains in-flight requests within the configured
// shutdown timeout.
package server
