// Package handler provides type-safe HTTP handlers.
//
// A HandlerFunc receives a Context and a request struct populated by
// binders, and returns a Response. Wrap adapts it to http.HandlerFunc:
//
//	type codeRequest struct {
//		Secret string `path:"secret"`
//	}
//
//	h := func(ctx handler.Context, req codeRequest) handler.Response {
//		png, err := render(req.Secret)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.Blob("image/png", png)
//	}
//
//	r.Get("/code/{secret}", handler.Wrap(h,
//		handler.WithBinders[handler.Context, codeRequest](binder.Path(chi.URLParam)),
//		handler.WithErrorHandler[handler.Context, codeRequest](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
// JSON and JSONError render a {data, meta, error} envelope. Blob writes raw
// bytes, Empty writes only a status code. Templ renders a templ component as
// HTML, or as a DataStar element patch when the request comes from DataStar.
// SSE keeps a DataStar event stream open and hands the handler a
// StreamContext for pushing components and signals.
//
// # Errors
//
// HTTPError carries a status code and a machine key. Wrap the domain error
// with it using errors.Join; NewErrorHandler logs the full chain and renders
// the key and a client-safe message.
package handler
