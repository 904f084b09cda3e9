// Package qrcode renders text, typically otpauth provisioning URIs, as QR
// code images: raw PNG bytes, a PNG streamed to an io.Writer, or a data URI
// that can be embedded directly into HTML pages.
//
// The package is a thin wrapper around github.com/skip2/go-qrcode that adds
// defaults (256px, medium error recovery), input validation and helpers for
// web handlers.
//
// # Usage
//
//	img, err := qrcode.Generate(uri, qrcode.WithSize(200))
//
//	err := qrcode.Write(w, uri, qrcode.WithRecoveryLevel(qrcode.High))
//
//	dataURI, err := qrcode.GenerateBase64Image(uri)
//
// # Error Handling
//
// ErrEmptyContent is returned for blank content and
// ErrorFailedToGenerateQRCode wraps failures of the upstream encoder, for
// example content too long for the selected recovery level. Compare with
// errors.Is.
package qrcode
