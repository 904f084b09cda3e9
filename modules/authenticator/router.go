package authenticator

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/totpqr/handler"
	"github.com/dmitrymomot/totpqr/pkg/binder"
	"github.com/dmitrymomot/totpqr/pkg/httpserver"
)

// Handle returns the module routes:
//
//	GET  /                       index page for the process secret
//	GET  /healthz                liveness probe
//	POST /secrets                new secret and its provisioning URI
//	POST /verify                 verify a code against a secret
//	GET  /code/{secret}          provisioning QR code as PNG
//	GET  /code/{secret}/uri      provisioning URI
//	GET  /code/{secret}/current  current code and time left
//	GET  /code/{secret}/stream   DataStar stream of the code box
func (s *Service) Handle() http.Handler {
	errorHandler := handler.NewErrorHandler(s.log)
	pathSecret := handler.WithBinders[handler.Context, secretRequest](binder.Path(chi.URLParam))
	secretErrors := handler.WithErrorHandler[handler.Context, secretRequest](errorHandler)

	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.index,
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler),
	))
	r.Get("/healthz", httpserver.HealthCheckHandler(s.log))

	r.Post("/secrets", handler.Wrap(s.newSecret,
		handler.WithBinders[handler.Context, newSecretRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, newSecretRequest](errorHandler),
	))
	r.Post("/verify", handler.Wrap(s.verify,
		handler.WithBinders[handler.Context, verifyRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, verifyRequest](errorHandler),
	))

	r.Route("/code/{secret}", func(r chi.Router) {
		r.Get("/", handler.Wrap(s.qrImage, pathSecret, secretErrors))
		r.Get("/uri", handler.Wrap(s.uri, pathSecret, secretErrors))
		r.Get("/current", handler.Wrap(s.current, pathSecret, secretErrors))
		r.Get("/stream", handler.Wrap(s.stream, pathSecret, secretErrors))
	})

	r.NotFound(handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	}, handler.WithErrorHandler[handler.Context, struct{}](errorHandler)))
	r.MethodNotAllowed(handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrMethodNotAllowed)
	}, handler.WithErrorHandler[handler.Context, struct{}](errorHandler)))

	return r
}
