// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown tied to a context.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run listens on the configured address; Serve takes an existing listener,
// which tests use with "127.0.0.1:0". When the context is done the server is
// shut down with http.Server.Shutdown bounded by the shutdown timeout, so
// in-flight requests such as open result streams get a chance to finish.
//
// Listen and serve failures are joined with ErrStart, shutdown failures with
// ErrShutdown.
//
// HealthCheckHandler provides a liveness or readiness check.
package httpserver
