// Package authenticator exposes the TOTP engine over HTTP.
//
// Secrets travel as Base32 path segments or JSON fields and are never
// stored; the only secret the process holds is the one it was started with,
// shown on the index page together with its QR code and a live code box
// streamed over DataStar server-sent events.
//
// Domain errors are mapped to HTTP errors: malformed secrets answer 400
// invalid_secret, malformed codes 422 invalid_code, empty labels 400
// invalid_label. Anything else is a 500.
package authenticator
