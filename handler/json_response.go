package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// JSONResponse is the envelope of every JSON response.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes an error in a JSON response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus overrides the HTTP status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// WithJSONMeta attaches metadata to the response envelope.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) { r.body.Meta = meta }
}

// WithJSONMessage overrides the error message of an error response.
func WithJSONMessage(message string) JSONOption {
	return func(r *jsonResponse) {
		if r.body.Error != nil && message != "" {
			r.body.Error.Message = message
		}
	}
}

// JSON renders v as the data member of the envelope with status 200.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err as the error member of the envelope. The status and
// code come from the HTTPError in err's chain; other errors render as 500
// with a generic message so internal details are not leaked.
func JSONError(err error, opts ...JSONOption) Response {
	status, key := statusOf(err)
	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		if m := clientMessage(err); m != "" {
			message = m
		}
	}

	r := &jsonResponse{
		status: status,
		body:   JSONResponse{Error: &ErrorDetail{Code: key, Message: message}},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// clientMessage flattens err into one line, leaving out HTTPError keys
// which are already rendered as the error code.
func clientMessage(err error) string {
	if err == nil {
		return ""
	}
	if _, ok := err.(HTTPError); ok {
		return ""
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return flatten(err)
	}
	parts := make([]string, 0, len(joined.Unwrap()))
	for _, e := range joined.Unwrap() {
		if m := clientMessage(e); m != "" {
			parts = append(parts, m)
		}
	}
	return strings.Join(parts, ": ")
}

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error hands err to the configured ErrorHandler, which logs it and renders
// it for the client. Use it instead of JSONError when failures should be
// logged.
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}

func flatten(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}
