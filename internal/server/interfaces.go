package server

// Server is the lifecycle of the edge transport. RunServer blocks until a
// termination signal arrives and Shutdown drains in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
