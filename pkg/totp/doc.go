// Package totp implements Time-based One-Time Passwords (RFC 6238) on top of
// the HMAC-based algorithm from RFC 4226, together with secret generation,
// Base32 transport encoding and otpauth provisioning URIs for authenticator
// apps such as Google Authenticator or 1Password.
//
// Every function except GenerateSecret is a pure function of its arguments:
// secrets are passed explicitly and nothing is cached, so the package is safe
// for concurrent use without locking.
//
// # Usage
//
//	secret, err := totp.GenerateSecret(totp.DefaultSecretSize)
//	if err != nil {
//		return err
//	}
//
//	uri, err := totp.BuildProvisioningURI("Acme", "alice@example.com", secret)
//	if err != nil {
//		return err
//	}
//	// render uri as a QR code, see package qrcode
//
//	code, err := totp.Generate(secret, time.Now())
//
//	ok, err := totp.Verify(secret, userInput, time.Now(), totp.WithSkew(1))
//
// Codes default to 6 digits, a 30 second period and HMAC-SHA1, the values
// every authenticator app understands. WithDigits (6 to 8), WithPeriod and
// WithAlgorithm (SHA1, SHA256, SHA512 from github.com/pquerna/otp) change
// them; BuildProvisioningURI encodes non-default values into the URI.
//
// # Error Handling
//
// Operations return package level sentinels, possibly joined with the
// underlying cause via errors.Join. Inspect them with errors.Is:
// ErrEntropySourceUnavailable, ErrInvalidEncoding, ErrInvalidTimestamp,
// ErrUnsupportedDigitCount, ErrInvalidLabel, ErrInvalidCode and friends.
//
// # See Also
//
//   - RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   - RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
//   - RFC 4648 – Base32 encoding
package totp
