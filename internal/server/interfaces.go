package server

// Server is the lifecycle of the daemon's transports.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then shuts down.
	RunServer()

	// Shutdown gracefully stops serving.
	Shutdown()
}
