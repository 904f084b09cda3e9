// Package binder populates request structs from HTTP requests.
//
// Each binder has the signature func(*http.Request, any) error and plugs into
// handler.WithBinders. Path reads router parameters, Query reads the query
// string and JSON decodes the request body. Binders can be combined on one
// struct; each fills only the fields carrying its tag:
//
//	type verifyRequest struct {
//		Secret string `json:"secret"`
//		Code   string `json:"code"`
//	}
//
//	type newSecretRequest struct {
//		Size int `query:"size"`
//	}
//
// All failures wrap one of the package errors, so callers can map them to a
// 400 response with errors.Is.
package binder
