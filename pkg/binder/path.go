package binder

import (
	"errors"
	"net/http"
)

// Path binds route parameters into fields tagged `path:"name"` using
// extractor, typically chi.URLParam:
//
//	type codeRequest struct {
//		Secret string `path:"secret"`
//	}
//
//	r.Get("/code/{secret}", handler.Wrap(h, handler.WithBinders(binder.Path(chi.URLParam))))
//
// Empty parameters leave the field untouched.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return errors.Join(ErrFailedToParsePath, errors.New("extractor function is nil"))
		}
		return bindFields(v, "path", func(name string) []string {
			if value := extractor(r, name); value != "" {
				return []string{value}
			}
			return nil
		}, ErrFailedToParsePath)
	}
}
