package server

import "context"

// Server owns the listening socket of the sample-app HTTP API.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, then shuts
	// down gracefully. Listener failures are logged.
	RunServer()

	// Run is RunServer bound to ctx: cancelling ctx stops the server the same
	// way a signal does. It returns the listener or serve error, if any.
	Run(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}
