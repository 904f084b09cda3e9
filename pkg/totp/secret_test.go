package totp_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/totpqr/pkg/totp"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device not configured") }

func TestGenerateSecret(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		length int
		want   int
	}{
		{"default size", 0, totp.DefaultSecretSize},
		{"negative falls back to default", -5, totp.DefaultSecretSize},
		{"ten bytes", 10, 10},
		{"sha512 sized", 64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			secret, err := totp.GenerateSecret(tt.length)
			require.NoError(t, err)
			assert.Len(t, secret, tt.want)
		})
	}

	t.Run("unique", func(t *testing.T) {
		t.Parallel()
		a, err := totp.GenerateSecret(0)
		require.NoError(t, err)
		b, err := totp.GenerateSecret(0)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

func TestGenerateSecretFrom(t *testing.T) {
	t.Parallel()

	t.Run("reads from the given source", func(t *testing.T) {
		t.Parallel()
		src := bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})
		secret, err := totp.GenerateSecretFrom(src, 10)
		require.NoError(t, err)
		assert.Equal(t, totp.Secret{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, secret)
	})

	t.Run("broken source", func(t *testing.T) {
		t.Parallel()
		secret, err := totp.GenerateSecretFrom(failingReader{}, 20)
		assert.ErrorIs(t, err, totp.ErrEntropySourceUnavailable)
		assert.Nil(t, secret)
	})

	t.Run("short source", func(t *testing.T) {
		t.Parallel()
		secret, err := totp.GenerateSecretFrom(bytes.NewReader([]byte{1, 2}), 20)
		assert.ErrorIs(t, err, totp.ErrEntropySourceUnavailable)
		assert.Nil(t, secret)
	})

	t.Run("nil source", func(t *testing.T) {
		t.Parallel()
		_, err := totp.GenerateSecretFrom(nil, 20)
		assert.ErrorIs(t, err, totp.ErrEntropySourceUnavailable)
	})
}

func TestBase32(t *testing.T) {
	t.Parallel()

	t.Run("known encodings", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ", totp.EncodeBase32(totp.Secret("12345678901234567890")))
		assert.Equal(t, "NBSWY3DP", totp.EncodeBase32(totp.Secret("hello")))
		assert.Equal(t, "AD7RA", totp.EncodeBase32(totp.Secret{0x00, 0xff, 0x10}))
		assert.Equal(t, "AEBAGBAFAYDQQCIK", totp.Secret{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}.String())
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		for n := range 65 {
			b := make([]byte, n+1)
			_, err := rand.Read(b)
			require.NoError(t, err)

			decoded, err := totp.DecodeBase32(totp.EncodeBase32(b))
			require.NoError(t, err)
			assert.Equal(t, totp.Secret(b), decoded)
		}
	})

	t.Run("tolerant input", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"  NBSWY3DP\n", "AD7RA===", "\tAD7RA"} {
			_, err := totp.DecodeBase32(in)
			assert.NoError(t, err, in)
		}
		got, err := totp.DecodeBase32("AD7RA===")
		require.NoError(t, err)
		assert.Equal(t, totp.Secret{0x00, 0xff, 0x10}, got)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{
			"12345",    // '1' is outside the alphabet
			"ABC-DEF",  // punctuation
			"ABCDEFG8", // '8' is outside the alphabet
			"A",        // impossible unpadded length
			"ABC",      // impossible unpadded length
			"ABCDEF",   // impossible unpadded length
			"ABCDEFGHA",
			"ABC===",
			"nbswy3dp", // lowercase is outside the alphabet
			"ad7ra",
			"",
			"   ",
			"====",
		} {
			secret, err := totp.DecodeBase32(in)
			assert.ErrorIs(t, err, totp.ErrInvalidEncoding, "input %q", in)
			assert.Nil(t, secret, "input %q", in)
		}
	})
}
