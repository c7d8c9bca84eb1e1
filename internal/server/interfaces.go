package server

// Server is the lifecycle contract of the API server.
type Server interface {
	// RunServer starts listening and blocks until a shutdown signal
	// arrives or the listener fails.
	RunServer()

	// Shutdown stops accepting connections and drains in-flight requests
	// within the configured timeout.
	Shutdown()
}
