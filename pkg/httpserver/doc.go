// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, lifecycle hooks and health-check handlers.
//
// Run binds the listener, serves the handler and blocks until the context is
// cancelled, SIGINT/SIGTERM is received or Shutdown is called. Request
// contexts derive from the server context, so streaming handlers such as
// server-sent events end when the server stops.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Run joins bind and serve failures with ErrStart; Shutdown joins failures
// with ErrShutdown. A second Run on the same Server yields ErrAlreadyRunning.
package httpserver
