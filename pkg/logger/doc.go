// Package logger builds context-aware *slog.Logger instances from functional
// options and provides helper constructors for the attribute names used
// across the service.
//
// New picks a text or JSON handler and wraps it with LogHandlerDecorator,
// which runs the registered ContextExtractor callbacks on every emitted
// record. Request ids (package requestid) and the runtime environment
// (package environment) are injected this way without threading loggers
// through call chains.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "totpqr"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "totp code", logger.Component("heartbeat"), logger.Code(code))
package logger
