package totp

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"io"
	"strings"
)

// DefaultSecretSize is the length in bytes of generated secrets (160 bits, RFC 4226 recommendation).
const DefaultSecretSize = 20

// b32 is the RFC 4648 alphabet without padding, as expected by authenticator apps.
var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// Secret is the shared HMAC key between the server and the authenticator app.
type Secret []byte

// String returns the Base32 transport form of the secret.
func (s Secret) String() string {
	return EncodeBase32(s)
}

// GenerateSecret returns length bytes read from crypto/rand.
// A non-positive length falls back to DefaultSecretSize.
func GenerateSecret(length int) (Secret, error) {
	return GenerateSecretFrom(rand.Reader, length)
}

// GenerateSecretFrom is GenerateSecret with an explicit entropy source.
func GenerateSecretFrom(r io.Reader, length int) (Secret, error) {
	if length <= 0 {
		length = DefaultSecretSize
	}
	if r == nil {
		return nil, ErrEntropySourceUnavailable
	}
	secret := make(Secret, length)
	if _, err := io.ReadFull(r, secret); err != nil {
		return nil, errors.Join(ErrEntropySourceUnavailable, err)
	}
	return secret, nil
}

// EncodeBase32 encodes the secret as uppercase unpadded Base32.
func EncodeBase32(secret Secret) string {
	return b32.EncodeToString(secret)
}

// DecodeBase32 parses an uppercase Base32 secret. Surrounding whitespace and
// trailing padding are tolerated since users often paste secrets copied from
// other tools.
func DecodeBase32(text string) (Secret, error) {
	text = strings.TrimRight(strings.TrimSpace(text), "=")
	if text == "" {
		return nil, ErrInvalidEncoding
	}
	// A trailing group of 1, 3 or 6 symbols cannot end on a byte boundary.
	switch len(text) % 8 {
	case 1, 3, 6:
		return nil, ErrInvalidEncoding
	}
	for _, c := range text {
		if (c < 'A' || c > 'Z') && (c < '2' || c > '7') {
			return nil, ErrInvalidEncoding
		}
	}
	secret, err := b32.DecodeString(text)
	if err != nil {
		return nil, errors.Join(ErrInvalidEncoding, err)
	}
	return secret, nil
}
