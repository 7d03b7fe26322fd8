package httpserver

import "errors"

var (
	// ErrStart indicates that the server failed to start or stopped unexpectedly.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrAlreadyRunning is joined with ErrStart when Serve is called twice.
	ErrAlreadyRunning = errors.New("server already running")
)
