// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a valid incoming "X-Request-ID" header or generates a
// UUIDv4, stores it in the request context and echoes it back in the
// response. LoggerExtractor plugs the id into the slog handler built by the
// logger package so every record logged with the request context carries it:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
