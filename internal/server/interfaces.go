package server

// Server is the lifecycle every transport this package manages follows: a
// blocking serve loop and a graceful stop.
type Server interface {
	// RunServer serves requests until the listener closes. It does not
	// return early on its own.
	RunServer()

	// Shutdown drains in-flight requests and releases the listener.
	Shutdown()
}
