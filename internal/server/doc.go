// Package server runs the HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling (SIGTERM, SIGINT,
// SIGQUIT) and graceful shutdown with a bounded drain period.
package server
