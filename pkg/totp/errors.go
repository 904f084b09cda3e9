package totp

import "errors"

var (
	ErrEntropySourceUnavailable = errors.New("entropy source unavailable")
	ErrInvalidEncoding          = errors.New("invalid base32 encoding")
	ErrInvalidTimestamp         = errors.New("timestamp before unix epoch")
	ErrUnsupportedDigitCount    = errors.New("unsupported digit count, must be between 6 and 8")
	ErrInvalidLabel             = errors.New("issuer and account labels must not be empty")
	ErrMissingSecret            = errors.New("missing secret")
	ErrInvalidCode              = errors.New("invalid OTP format")
	ErrInvalidPeriod            = errors.New("invalid period, must be greater than 0")
	ErrUnsupportedAlgorithm     = errors.New("unsupported HMAC algorithm")
	ErrInvalidSkew              = errors.New("invalid skew, must be at most 10 steps")
)
