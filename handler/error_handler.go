package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/totpqr/pkg/environment"
	"github.com/dmitrymomot/totpqr/pkg/logger"
)

// NewErrorHandler logs errors and renders them for the client.
//
// Client errors (4xx) are logged at warn level, everything else at error
// level. DataStar requests receive an "error" signal over the event stream;
// other requests receive the JSON error envelope built by JSONError.
// In the development environment server errors expose the full error text.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		status, key := statusOf(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(ctx, level, "request error",
			logger.Component("handler"),
			logger.Error(err),
			slog.String("error_code", key),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		if ctx.Streaming() || IsDataStar(r) {
			renderSignalError(ctx, log, status, key, err)
			return
		}

		var opts []JSONOption
		if status >= http.StatusInternalServerError && environment.IsDevelopment(ctx) {
			opts = append(opts, WithJSONMessage(flatten(err)))
		}
		if renderErr := JSONError(err, opts...).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.WarnContext(ctx, "failed to render error response",
				logger.Component("handler"),
				logger.Error(renderErr),
			)
		}
	}
}

func renderSignalError(ctx Context, log *slog.Logger, status int, key string, err error) {
	message := http.StatusText(status)
	switch {
	case status < http.StatusInternalServerError:
		if m := clientMessage(err); m != "" {
			message = m
		}
	case environment.IsDevelopment(ctx):
		message = flatten(err)
	}

	data, _ := json.Marshal(map[string]any{
		"error": ErrorDetail{Code: key, Message: message},
	})
	if sendErr := ctx.SSE().PatchSignals(data); sendErr != nil {
		log.WarnContext(ctx, "failed to send error signal",
			logger.Component("handler"),
			logger.Error(sendErr),
		)
	}
}
