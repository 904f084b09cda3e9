package handler

import "errors"

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrNotDataStar indicates an SSE endpoint was requested without a
	// DataStar (event-stream) connection.
	ErrNotDataStar = errors.New("SSE endpoint requires DataStar connection")
)
