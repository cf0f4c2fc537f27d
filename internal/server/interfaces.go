package server

// Server is the lifecycle of the site process.
//
// RunServer blocks until a stop signal arrives or [Server.Shutdown] is
// called.
type Server interface {
	// RunServer starts the listener and the workers and blocks until both
	// have stopped.
	RunServer()

	// Shutdown requests a graceful stop of a running server.
	Shutdown()
}
