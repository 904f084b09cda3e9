package binder

import "net/http"

// Query binds query string parameters into fields tagged `query:"name"`.
// Slice fields accept repeated and comma-separated values; pointer fields
// stay nil when the parameter is absent.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values := r.URL.Query()
		return bindFields(v, "query", func(name string) []string {
			return values[name]
		}, ErrFailedToParseQuery)
	}
}
