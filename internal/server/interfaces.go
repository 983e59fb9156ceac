package server

import "context"

// Server defines the lifecycle contract of the API server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives,
	// then drains in-flight requests.
	RunServer() error

	// Run serves requests until ctx is cancelled or the listener fails.
	Run(ctx context.Context) error
}
